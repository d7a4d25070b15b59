package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила валидации.
// Паника здесь уместна - это ошибка времени запуска приложения.
func registerCustomRules(v *validator.Validate) {
	// ratingrange: целочисленная оценка 1..5 (исходное сообщение клиенту
	// формируется в getErrorMessage)
	if err := v.RegisterValidation("ratingrange", func(fl validator.FieldLevel) bool {
		rating := fl.Field().Int()
		return rating >= 1 && rating <= 5
	}); err != nil {
		panic("failed to register validation rule 'ratingrange': " + err.Error())
	}
}
