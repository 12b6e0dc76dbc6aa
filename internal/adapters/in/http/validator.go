package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validator hook.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// jsonFieldName reports fields by their JSON name so validation errors
// match the wire format clients actually sent.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func fieldErrorsFrom(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "body", Message: "is invalid"}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldError.Field(),
			Message: messageForTag(fieldError),
		})
	}
	return fieldErrors
}

func messageForTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "must contain at least " + fieldError.Param() + " element(s)"
	default:
		return "is invalid"
	}
}
