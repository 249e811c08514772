// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"displayfleet/internal/domain/entity"
	"displayfleet/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagDeviceID validates a display identifier.
const TagDeviceID = "deviceid"

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the fleet's custom tags registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = validate.RegisterValidation(TagDeviceID, func(fl validator.FieldLevel) bool {
		return entity.IsValidDeviceID(strings.TrimSpace(fl.Field().String()))
	})

	return &Validator{validate: validate}
}

// Validate checks i against its struct tags.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validation failures into field -> rule pairs for error responses.
// It returns nil when err is not a validation failure.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		fields[fieldErr.Field()] = rule
	}

	return fields
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}

	return name
}
