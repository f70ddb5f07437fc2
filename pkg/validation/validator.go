package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// FieldError descreve a primeira regra violada, pelo nome JSON do campo
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	return "invalid field " + e.Field + " (" + e.Tag + ")"
}

// Validator devolve a instância compartilhada, com as regras customizadas registradas
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Usa o nome do campo no JSON nas mensagens de erro
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("oauth_provider", validateOAuthProvider)
	})
	return validate
}

// Struct valida s e devolve um *FieldError com a primeira violação encontrada
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: verrs[0].Field(), Tag: verrs[0].Tag()}
	}
	return err
}

func validateOAuthProvider(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "facebook", "instagram":
		return true
	}
	return false
}
