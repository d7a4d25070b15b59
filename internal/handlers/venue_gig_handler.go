package handlers

import (
	"net/http"

	"gigbook_backend/internal/middleware"
	"gigbook_backend/internal/models"
	"gigbook_backend/internal/services"
	"gigbook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// VenueGigHandler обслуживает сторону площадки: CRUD гигов,
// просмотр предложений, найм и подтверждение завершения.
type VenueGigHandler struct {
	*BaseHandler
	gigService      services.GigService
	proposalService services.ProposalService
}

func NewVenueGigHandler(base *BaseHandler, gigService services.GigService, proposalService services.ProposalService) *VenueGigHandler {
	return &VenueGigHandler{
		BaseHandler:     base,
		gigService:      gigService,
		proposalService: proposalService,
	}
}

// RegisterRoutes вешает на каждую ручку свое сообщение 403,
// как их различает клиент
func (h *VenueGigHandler) RegisterRoutes(r *gin.RouterGroup) {
	venues := r.Group("/venues")
	venues.Use(middleware.AuthMiddleware())
	{
		venueOnly := func(message string) gin.HandlerFunc {
			return middleware.RoleMiddleware(models.UserRoleVenue, message)
		}

		venues.POST("/gigs", venueOnly("Only venue users can create or manage gigs"), h.CreateGig)
		venues.GET("/gigs", venueOnly("Only venue users can access gig listings"), h.ListGigs)
		venues.GET("/gigs/:id", venueOnly("Only venue users can access gigs"), h.GetGig)
		venues.PUT("/gigs/:id", venueOnly("Only venue users can update gigs"), h.UpdateGig)
		venues.DELETE("/gigs/:id", venueOnly("Only venue users can delete gigs"), h.DeleteGig)

		venues.GET("/gigs/:id/proposals", venueOnly("Only venue users can view gig proposals"), h.ListProposals)
		venues.POST("/proposals/:id/hire", venueOnly("Only venue users can hire artists"), h.HireArtist)
		venues.POST("/gigs/:id/confirm-completion", venueOnly("Only venue users can confirm gig completion"), h.ConfirmCompletion)
	}
}

// ---------------- Gig CRUD ----------------

func (h *VenueGigHandler) CreateGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	gig, err := h.gigService.CreateGig(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, gin.H{"gig": gig})
}

func (h *VenueGigHandler) ListGigs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ListGigsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.gigService.ListOwnGigs(c.Request.Context(), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{
		"gigs":       resp.Gigs,
		"pagination": resp.Pagination,
	})
}

func (h *VenueGigHandler) GetGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	gig, err := h.gigService.GetOwnGig(c.Request.Context(), userID, gigID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{"gig": gig})
}

func (h *VenueGigHandler) UpdateGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.GigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	gig, err := h.gigService.UpdateGig(c.Request.Context(), userID, gigID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{"gig": gig})
}

func (h *VenueGigHandler) DeleteGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.gigService.DeleteGig(c.Request.Context(), userID, gigID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ---------------- Hiring Workflow ----------------

func (h *VenueGigHandler) ListProposals(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	proposals, err := h.proposalService.GetGigProposals(c.Request.Context(), userID, gigID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if proposals == nil {
		proposals = []*models.Proposal{}
	}

	h.Success(c, http.StatusOK, gin.H{"proposals": proposals})
}

func (h *VenueGigHandler) HireArtist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	proposalID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	proposal, err := h.proposalService.HireArtist(c.Request.Context(), userID, proposalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{"proposal": proposal})
}

func (h *VenueGigHandler) ConfirmCompletion(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ConfirmCompletionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.proposalService.ConfirmCompletion(c.Request.Context(), userID, gigID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, gin.H{
		"proposal":     resp.Proposal,
		"artistRating": resp.ArtistRating,
	})
}
