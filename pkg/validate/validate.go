// Package validate envuelve go-playground/validator con nombres de campo JSON.
// El mismo esquema (tags en los DTO) se ejecuta en el formulario del admin y en los handlers.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Límites de la regla "amount": cabe en NUMERIC(10,2).
const (
	amountScale = 2
	amountMax   = 100000000
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = instance.RegisterValidation("amount", isAmount)
	})
	return instance
}

// isAmount acepta importes no negativos con hasta dos decimales y menores que amountMax.
func isAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() &&
		d.LessThan(decimal.NewFromInt(amountMax)) &&
		d.Equal(d.Truncate(amountScale))
}

// FieldError error de validación de un campo. Field usa el nombre JSON (ej. "faq[1].answer").
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FieldErrors lista ordenada de errores por campo.
type FieldErrors []FieldError

// Error implementa error: "name: is required; ref_link: must be a valid URL".
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Get devuelve el primer error del campo o nil.
func (e FieldErrors) Get(field string) *FieldError {
	for i := range e {
		if e[i].Field == field {
			return &e[i]
		}
	}
	return nil
}

// Struct valida s y devuelve nil si es válido.
func Struct(s any) FieldErrors {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{{Rule: "invalid", Message: err.Error()}}
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateStoreRequest.faq[0].question" -> "faq[0].question".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "number":
		return "must be a numeric id"
	case "numeric":
		return "must be a number"
	case "amount":
		return "must be between 0 and 99999999.99 with at most 2 decimals"
	case "datetime":
		return "must be a date (" + fe.Param() + ")"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
