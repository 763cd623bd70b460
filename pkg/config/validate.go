package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the config after defaults and overrides are applied.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError turns the first validator error into a message
// an operator can act on.
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", e.Field())
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", e.Field(), e.Param())
		default:
			return fmt.Errorf("%s: failed %s validation", e.Field(), e.Tag())
		}
	}
	return err
}
