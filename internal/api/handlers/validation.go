package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator возвращает общий валидатор DTO
// Поля в ошибках называются по json тегам; зарегистрирован тег hhmm для строгого формата HH:MM
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return types.TimeString(fl.Field().String()).Validate() == nil
		})
	})
	return validate
}

// ValidateStruct проверяет DTO по тегам validate и возвращает читаемую ошибку
func ValidateStruct(dto interface{}) error {
	err := Validator().Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s: %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}
