// Package validator adapts go-playground/validator to echo and registers the
// marketplace enumeration tags.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every failed field of a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

// EchoValidator satisfies echo.Validator so handlers can call c.Validate(req).
type EchoValidator struct {
	v *validator.Validate
}

// New returns a validator with the municipality, location_type and
// business_type tags registered. Field names in messages follow the json tags.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("municipality", enumValidator(func(s string) bool {
		_, ok := entity.ParseMunicipality(s)

		return ok
	}))
	_ = v.RegisterValidation("location_type", enumValidator(func(s string) bool {
		_, ok := entity.ParseLocationType(s)

		return ok
	}))
	_ = v.RegisterValidation("business_type", enumValidator(func(s string) bool {
		_, ok := entity.ParseBusinessType(s)

		return ok
	}))

	return &EchoValidator{v: v}
}

// Validate runs struct validation and flattens failures into a *ValidationError.
func (ev *EchoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	if ve, ok := errors.AsType[validator.ValidationErrors](err); ok {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fieldError(fe))
		}

		return &ValidationError{Fields: fields}
	}

	return errors.WithStack(err)
}

// enumValidator accepts empty values so "omitempty" stays optional.
func enumValidator(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}

		return valid(s)
	}
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "municipality":
		return field + " is not a valid municipality"
	case "location_type":
		return field + " is not a valid location type"
	case "business_type":
		return field + " is not a valid business type"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
