package handlers

import (
	"net/http"

	"gigbook_backend/internal/middleware"
	"gigbook_backend/internal/models"
	"gigbook_backend/internal/services"
	"gigbook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ArtistGigHandler обслуживает сторону артиста: просмотр гигов,
// подача предложений, запрос завершения, чтение рейтинга.
type ArtistGigHandler struct {
	*BaseHandler
	gigService      services.GigService
	proposalService services.ProposalService
	ratingService   services.RatingService
}

func NewArtistGigHandler(
	base *BaseHandler,
	gigService services.GigService,
	proposalService services.ProposalService,
	ratingService services.RatingService,
) *ArtistGigHandler {
	return &ArtistGigHandler{
		BaseHandler:     base,
		gigService:      gigService,
		proposalService: proposalService,
		ratingService:   ratingService,
	}
}

func (h *ArtistGigHandler) RegisterRoutes(r *gin.RouterGroup) {
	artists := r.Group("/artists")
	artists.Use(middleware.AuthMiddleware())
	{
		artistOnly := func(message string) gin.HandlerFunc {
			return middleware.RoleMiddleware(models.UserRoleArtist, message)
		}

		artists.GET("/gigs", artistOnly("Only artist users can view gig listings"), h.ListGigs)
		artists.GET("/gigs/:id", artistOnly("Only artist users can view gigs"), h.GetGig)
		artists.POST("/gigs/:id/proposal", artistOnly("Only artist users can submit proposals"), h.SubmitProposal)
		artists.POST("/gigs/:id/request-completion", artistOnly("Only artist users can request gig completion"), h.RequestCompletion)

		// рейтинг артиста виден любому залогиненному пользователю
		artists.GET("/:id/rating", h.GetRating)
	}
}

func (h *ArtistGigHandler) ListGigs(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var query dto.ListGigsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.gigService.BrowseGigs(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{
		"gigs":       resp.Gigs,
		"pagination": resp.Pagination,
	})
}

func (h *ArtistGigHandler) GetGig(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	gigID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	gig, err := h.gigService.GetGig(c.Request.Context(), gigID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{"gig": gig})
}

func (h *ArtistGigHandler) SubmitProposal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SubmitProposalRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.SubmitProposal(c.Request.Context(), userID, gigID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, gin.H{"proposal": proposal})
}

func (h *ArtistGigHandler) RequestCompletion(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RequestCompletionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.RequestCompletion(c.Request.Context(), userID, gigID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{"proposal": proposal})
}

func (h *ArtistGigHandler) GetRating(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	artistID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	rating, err := h.ratingService.GetArtistRating(c.Request.Context(), artistID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{"artistRating": rating})
}
