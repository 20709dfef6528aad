package http

import (
	"fmt"
	"strconv"
	"strings"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/generated/servers"
)

// Keys the dashboard nests inside jewellery_details next to the real details.
const (
	legacyStatusKey      = "status"
	legacyWorkerPhoneKey = "worker-phone"
	legacyWorkerIDKey    = "worker-id"
)

var detailKeys = []string{"name", "weight", "melting", "timeline", "special_instructions"}

// normalizeOrderUpdate folds the shapes the dashboard has used over time into
// one set of fields.
//
// The worker is taken from the first present non-empty value of worker_phone,
// worker_id, jewellery_details["worker-phone"], jewellery_details["worker-id"].
// If keys are present but all empty the order is unassigned. Details are
// replaced only when at least one detail key is sent.
func normalizeOrderUpdate(body servers.OrderUpdate) commands.UpdateOrderFields {
	var fields commands.UpdateOrderFields
	nested := map[string]any{}
	if body.JewelleryDetails != nil {
		nested = *body.JewelleryDetails
	}

	fields.Status = firstNonBlank(body.Status, stringField(nested, legacyStatusKey))

	switch {
	case body.ClientPhone != nil && strings.TrimSpace(*body.ClientPhone) != "":
		fields.ClientPhone = body.ClientPhone
	case body.ClientDetails != nil && body.ClientDetails.Phone != nil && strings.TrimSpace(*body.ClientDetails.Phone) != "":
		fields.ClientPhone = body.ClientDetails.Phone
	}

	fields.WorkerIdentifier = workerIdentifier(
		body.WorkerPhone,
		body.WorkerId,
		stringField(nested, legacyWorkerPhoneKey),
		stringField(nested, legacyWorkerIDKey),
	)

	if hasAnyKey(nested, detailKeys) {
		details := order.JewelleryDetails{
			Name:                deref(stringField(nested, "name")),
			Weight:              deref(stringField(nested, "weight")),
			Melting:             deref(stringField(nested, "melting")),
			Timeline:            deref(stringField(nested, "timeline")),
			SpecialInstructions: deref(stringField(nested, "special_instructions")),
		}
		fields.Details = &details
	}

	return fields
}

func workerIdentifier(candidates ...*string) *string {
	var present bool
	for _, c := range candidates {
		if c == nil {
			continue
		}
		present = true
		if v := strings.TrimSpace(*c); v != "" {
			return &v
		}
	}
	if present {
		unassign := ""
		return &unassign
	}
	return nil
}

func firstNonBlank(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil && strings.TrimSpace(*c) != "" {
			return c
		}
	}
	return nil
}

// stringField returns nil for a missing or null key. Numbers are kept as the
// dashboard typed them, e.g. a weight of 12.5.
func stringField(m map[string]any, key string) *string {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	default:
		s = fmt.Sprint(v)
	}
	return &s
}

func hasAnyKey(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
