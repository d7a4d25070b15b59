package apperrors

import "net/http"

/*
Фабрики для доменных ошибок. "Не найдено или нет доступа" намеренно
отдается как 404, чтобы не подтверждать существование чужого ресурса.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrNotFoundWrap - оборачивает ошибку репозитория (напр. gorm.ErrRecordNotFound) в 404
func ErrNotFoundWrap(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidStatus - фабрика для операций, недопустимых в текущем статусе (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}
