package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
)

var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true, "CT": true, "DE": true,
	"DC": true, "FL": true, "GA": true, "HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true, "MA": true, "MI": true, "MN": true,
	"MS": true, "MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true, "NM": true,
	"NY": true, "NC": true, "ND": true, "OH": true, "OK": true, "OR": true, "PA": true, "RI": true,
	"SC": true, "SD": true, "TN": true, "TX": true, "UT": true, "VT": true, "VA": true, "WA": true,
	"WV": true, "WI": true, "WY": true, "PR": true,
}

// RegisterValidators registra as tags customizadas no validator do gin
// e usa o nome JSON do campo nas mensagens de erro.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}
		return name
	})

	if err := v.RegisterValidation("gradyear", validateGradYear); err != nil {
		return fmt.Errorf("failed to register gradyear: %w", err)
	}
	if err := v.RegisterValidation("usstate", validateUSState); err != nil {
		return fmt.Errorf("failed to register usstate: %w", err)
	}
	return nil
}

func validateGradYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= entities.MinGraduationYear && year <= entities.MaxGraduationYear
}

func validateUSState(fl validator.FieldLevel) bool {
	return fl.Field().String() == "" || usStates[strings.ToUpper(fl.Field().String())]
}

// BindingErrorResponse converte um erro de binding em problema 400.
// Erros de validação listam os campos; JSON malformado vira bad request.
func BindingErrorResponse(c *gin.Context, err error) ErrorResponse {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return BadRequestErrorResponseI18n(c)
	}

	fields := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(c, fe),
			Tag:     fe.Tag(),
		})
	}
	return ValidationErrorResponseI18n(c, fields)
}

func validationMessage(c *gin.Context, fe validator.FieldError) string {
	params := map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}

	key := "validation." + fe.Tag()
	if msg := T(c, key, params); msg != key {
		return msg
	}
	return T(c, "validation.invalid", params)
}

// FieldErrorResponse cria um problema de validação para um único campo
func FieldErrorResponse(c *gin.Context, field, messageKey string) ErrorResponse {
	return ValidationErrorResponseI18n(c, []ValidationError{{
		Field:   field,
		Message: T(c, messageKey, map[string]interface{}{"Field": field}),
	}})
}
