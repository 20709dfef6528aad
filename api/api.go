// Package api embeds the OpenAPI document of the HTTP interface.
//
// The server stubs in internal/generated/servers are generated from it:
//
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -generate types,server -package servers -o ../internal/generated/servers/servers.gen.go openapi.yaml
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
