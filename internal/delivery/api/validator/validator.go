// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"todo/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request structs.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names.
func New() *CustomValidator {
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

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// FieldErrors maps each failing field to the rule it broke. Errors that are
// not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}

	return fields
}
