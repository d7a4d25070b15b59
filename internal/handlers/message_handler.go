package handlers

import (
	"net/http"

	"gigbook_backend/internal/middleware"
	"gigbook_backend/internal/services"
	"gigbook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// MessageHandler - переписка по предложению. Доступ ограничен двумя
// сторонами предложения, роль не проверяется на уровне маршрута.
type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	proposals := r.Group("/proposals")
	proposals.Use(middleware.AuthMiddleware())
	{
		proposals.POST("/:id/messages", h.PostMessage)
		proposals.GET("/:id/messages", h.ListMessages)
	}
}

func (h *MessageHandler) PostMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	proposalID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.PostMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.messageService.PostMessage(c.Request.Context(), userID, proposalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, gin.H{"message": message})
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	proposalID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var query dto.PaginationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.messageService.ListMessages(c.Request.Context(), userID, proposalID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{
		"messages":   resp.Messages,
		"pagination": resp.Pagination,
	})
}
