// Package validate checks request payloads against their declared field
// constraints and reports failures as structured field errors.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json name, not the Go field name
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return val
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Struct validates s and returns one FieldError per violated constraint. A
// non-nil error means s could not be validated at all (not a struct).
func Struct(s interface{}) ([]FieldError, error) {
	err := v.Struct(s)
	if err == nil {
		return nil, nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return fields, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "min":
		return fmt.Sprintf("deve ter no mínimo %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	default:
		return fmt.Sprintf("valor inválido (%s)", fe.Tag())
	}
}
