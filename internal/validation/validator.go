// Package validation provides request validation utilities using the validator/v10 library.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
	"github.com/notefulapp/noteful-server/internal/id"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our domain.
//
// Besides the built-in tags it understands "objectid", which accepts a
// well-formed entity identifier.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		name, _, _ = strings.Cut(name, ",")
		if name == "-" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return id.IsValid(fl.Field().String())
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns a domain error.
//
// The error message is the sentence for the first failing field, in struct
// order; Details maps every failing field to its sentence.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// formatError converts validator errors to domain errors.
func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	first := ""
	for _, e := range validationErrs {
		msg := v.friendlyMessage(e)
		if first == "" {
			first = msg
		}
		fieldErrors[e.Field()] = msg
	}

	return domainerrors.ValidationWithDetails(first, fieldErrors)
}

func (v *Validator) friendlyMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("Missing `%s` in request body", field)
	case "objectid":
		return fmt.Sprintf("Invalid `%s`", field)
	case "min":
		return fmt.Sprintf("`%s` must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("`%s` must not exceed %s characters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("`%s` must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("`%s` is invalid", field)
	}
}
