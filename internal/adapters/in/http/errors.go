package http

import (
	"errors"
	"net/http"
	"strings"

	"atelier/internal/core/ports"
	"atelier/internal/generated/servers"
	"atelier/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var errMalformedBody = errors.New("invalid request body")

func statusCodeFor(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, errMalformedBody), errors.As(err, &validationErrors):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrPhoneAlreadyRegistered),
		errors.Is(err, ports.ErrOrderAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Unexpected errors are logged and replaced
// by fallback so that internals never reach the client.
func (s *Server) fail(ctx echo.Context, err error, fallback string) error {
	code := statusCodeFor(err)
	message := err.Error()

	var validationErrors validator.ValidationErrors
	switch {
	case code == http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), fallback, "error", err)
		message = fallback
	case errors.As(err, &validationErrors):
		message = formatValidationErrors(validationErrors)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func formatValidationErrors(validationErrors validator.ValidationErrors) string {
	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			details = append(details, fe.Namespace()+" is required")
		case "min":
			details = append(details, fe.Namespace()+" must have at least "+fe.Param()+" item(s)")
		case "oneof":
			details = append(details, fe.Namespace()+" must be one of: "+fe.Param())
		default:
			details = append(details, fe.Namespace()+" is invalid")
		}
	}
	return "validation failed: " + strings.Join(details, "; ")
}
