package http

import (
	"atelier/internal/generated/servers"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo. The generated
// request types carry no struct tags, so their rules are registered here.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterStructValidationMapRules(map[string]string{
		"OrderId":     "required",
		"ClientPhone": "required",
	}, servers.NewOrder{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"Recipient": "required,oneof=client worker both",
		"Text":      "required",
	}, servers.OrderUpdateMessage{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"Name":         "required",
		"PhoneNumbers": "required,min=1,dive",
	}, servers.WorkerInput{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"Number": "required",
	}, servers.WorkerPhoneInput{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"OrderId":    "required",
		"SenderType": "required,oneof=client worker enterprise",
	}, servers.NewMessage{})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
