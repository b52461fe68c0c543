package response

import (
	"errors"
	"net/http"

	"github.com/officehub/insights-gateway-go/internal/client/officeapi"
	"github.com/officehub/insights-gateway-go/internal/pkg/validator"
)

// HandleError maps domain and upstream errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// The upstream rejected the forwarded bearer token
	case errors.Is(err, officeapi.ErrUnauthorized):
		Unauthorized(w, "Session rejected by the office platform")

	// The upstream could not serve a required resource
	case errors.Is(err, officeapi.ErrUnavailable):
		BadGateway(w, "Office platform unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
