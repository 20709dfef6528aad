package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var registerSwaggerOnce sync.Once

// registerSwaggerDoc publishes the API description to echo-swagger, which
// reads it back through the swag registry.
func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(data))
	})
	return nil
}
