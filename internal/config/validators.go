package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// register adds the custom validations and reports fields by their flag names.
func register(validate *validator.Validate) error {
	if err := validate.RegisterValidation("suffix", validateSuffix); err != nil {
		return fmt.Errorf("registering suffix validation: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", splitSize)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}

		return name
	})

	return nil
}

// validateSuffix accepts an empty string or a dotted suffix such as ".enc".
// Path separators are rejected so outputs stay next to their inputs.
func validateSuffix(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	value := field.String()
	if value == "" {
		return true
	}

	return strings.HasPrefix(value, ".") && len(value) > 1 && !strings.ContainsAny(value, `/\`)
}
