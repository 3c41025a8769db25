package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validator valida structs de requisição usando as tags `validate`
type Validator interface {
	ValidateStruct(s any) map[string]string
	Validate(s any) error
}

type validatorImpl struct {
	validate *validator.Validate
}

// ValidationError agrega os erros por campo de uma validação
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// IsValidationError verifica se o erro veio de uma validação de struct
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func NewValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Usa o nome do campo JSON nas mensagens, que é o que o cliente da API enxerga
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &validatorImpl{validate: v}
}

// ValidateStruct retorna nil quando a struct é válida, ou um mapa namespace -> mensagem
func (v *validatorImpl) ValidateStruct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		key := fieldPath(fieldErr.Namespace())
		fields[key] = formatValidationError(fieldErr, prettifyFieldName(fieldErr.Field()))
	}

	return fields
}

func (v *validatorImpl) Validate(s any) error {
	fields := v.ValidateStruct(s)
	if fields == nil {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// fieldPath remove o nome do tipo raiz do namespace ("OrderRequest.items[0].sku" -> "items[0].sku")
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func formatValidationError(err validator.FieldError, fieldName string) string {
	switch err.Tag() {
	case "required":
		return fieldName + " is required"
	case "required_without":
		return fieldName + " is required when " + prettifyFieldName(err.Param()) + " is empty"
	case "min":
		if err.Kind() == reflect.Slice || err.Kind() == reflect.Map {
			return fieldName + " must contain at least " + err.Param() + " item(s)"
		}
		return fieldName + " must be at least " + err.Param()
	case "max":
		return fieldName + " must be at most " + err.Param()
	case "len":
		return fieldName + " must be exactly " + err.Param() + " characters long"
	case "gt":
		return fieldName + " must be greater than " + err.Param()
	case "gte":
		return fieldName + " must be greater than or equal to " + err.Param()
	case "oneof":
		return fieldName + " must be one of the following: " + err.Param()
	case "email":
		return fieldName + " must be a valid email address"
	default:
		return fieldName + " is invalid"
	}
}

// prettifyFieldName transforma camelCase em texto legível ("poNumber" -> "Po Number")
func prettifyFieldName(field string) string {
	var result []rune
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' && field[i-1] >= 'a' && field[i-1] <= 'z' {
			result = append(result, ' ')
		}
		result = append(result, r)
	}
	return cases.Title(language.Und, cases.NoLower).String(string(result))
}
