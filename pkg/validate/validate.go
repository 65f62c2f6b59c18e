// Package validate exposes a shared request validator so every handler
// enforces the same `validate` struct tags.
package validate

import (
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

var instance = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request DTO against its validate tags.
func Struct(v any) error {
	return instance.Struct(v)
}

// Message flattens a validation error into a user-facing message.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts[i] = fmt.Sprintf("%s is required", fe.Field())
		case "gt":
			parts[i] = fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
		case "min":
			parts[i] = fmt.Sprintf("%s must have at least %s", fe.Field(), fe.Param())
		case "max":
			parts[i] = fmt.Sprintf("%s must have at most %s", fe.Field(), fe.Param())
		case "oneof":
			parts[i] = fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
		default:
			parts[i] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return strings.Join(parts, "; ")
}
