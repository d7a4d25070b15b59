package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// errorResponse - стандартный конверт ответа об ошибке:
// {status: "fail"|"error", message, error?: [{field, message}]}
// "fail" - клиентская (4xx), "error" - серверная (5xx).
type errorResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"error,omitempty"`
}

// HandleError - основная логика обработки ошибок для Gin
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	status := "fail"
	if appErr.HTTPCode >= 500 {
		status = "error"
		// Внутренности серверных ошибок не утекают клиенту
		slog.Error("server error",
			"domain", appErr.Domain,
			"code", string(appErr.Code),
			"error", appErr.Error(),
			"path", c.Request.URL.Path,
		)
		appErr.Message = "Something went wrong!"
		appErr.Fields = nil
	}

	c.JSON(appErr.HTTPCode, errorResponse{
		Status:  status,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
