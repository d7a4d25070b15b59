package handlers

import (
	"gigbook_backend/internal/services"
	"gigbook_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	VenueGigHandler  *VenueGigHandler
	ArtistGigHandler *ArtistGigHandler
	MessageHandler   *MessageHandler
	ProfileHandler   *ProfileHandler
	HealthHandler    *HealthHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:      NewAuthHandler(base, container.Auth),
		VenueGigHandler:  NewVenueGigHandler(base, container.Gig, container.Proposal),
		ArtistGigHandler: NewArtistGigHandler(base, container.Gig, container.Proposal, container.Rating),
		MessageHandler:   NewMessageHandler(base, container.Message),
		ProfileHandler:   NewProfileHandler(base, container.Profile),
		HealthHandler:    NewHealthHandler(base),
	}
}
