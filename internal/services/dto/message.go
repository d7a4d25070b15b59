package dto

import "gigbook_backend/internal/models"

// PostMessageRequest - новое сообщение в переписке по предложению.
// Границы длины проверяются после обрезки пробелов в сервисе.
type PostMessageRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type MessageListResponse struct {
	Messages   []models.Message `json:"messages"`
	Pagination PaginationMeta   `json:"pagination"`
}
