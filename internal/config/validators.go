package config

import (
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a custom validator ensuring a field is not set together with any of
// the space-separated fields named in its parameter.
// It registers both the validation logic and a human-readable error message.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive with the other key sources",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks that a non-empty string field has no non-empty partner.
func validateExclusive(fl playground.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() != reflect.String || field.String() == "" {
		return true
	}

	for _, name := range strings.Fields(fl.Param()) {
		other := fl.Parent().FieldByName(name)

		if other.IsValid() && other.Kind() == reflect.String && other.String() != "" {
			return false
		}
	}

	return true
}
