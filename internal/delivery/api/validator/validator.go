// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request structs.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. Failures are flattened into one message.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return fmt.Errorf("invalid request: %s", strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldErr.Field(), fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed %s", fieldErr.Field(), fieldErr.Tag())
	}
}
