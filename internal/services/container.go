package services

import (
	"gigbook_backend/internal/email"
	"gigbook_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer собирает все сервисы приложения с их зависимостями
type ServiceContainer struct {
	Auth     AuthService
	Gig      GigService
	Proposal ProposalService
	Message  MessageService
	Rating   RatingService
	Profile  ProfileService
}

func NewServiceContainer(db *gorm.DB, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	// изменяемое состояние воркфлоу найма живет в одном наборе
	// хранилищ на процесс, владеют им сервисы
	registry := repositories.NewProposalRegistry()
	ratingStore := repositories.NewRatingStore()
	messageStore := repositories.NewMessageStore()

	emails := NewEmailService(emailProvider)

	return &ServiceContainer{
		Auth:     NewAuthService(userRepo),
		Gig:      NewGigService(gigRepo),
		Proposal: NewProposalService(registry, ratingStore, gigRepo, userRepo, emails),
		Message:  NewMessageService(messageStore, registry, gigRepo),
		Rating:   NewRatingService(ratingStore, userRepo),
		Profile:  NewProfileService(profileRepo),
	}
}
