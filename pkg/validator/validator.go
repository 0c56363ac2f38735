package validator

import "github.com/go-playground/validator/v10"

// FieldError error de validación de un campo concreto, listo para serializar
// en la respuesta 400.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

// ValidateStruct valida los tags `validate` de un struct y devuelve los
// errores campo a campo. Slice vacío = struct válido.
func ValidateStruct(data interface{}) []FieldError {
	var out []FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			out = append(out, FieldError{
				Field: fe.Field(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return out
}
