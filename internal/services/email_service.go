package services

import (
	"fmt"

	"gigbook_backend/internal/email"
	"gigbook_backend/internal/logger"
	"gigbook_backend/internal/models"
)

// EmailService рассылает уведомления о событиях найма.
// Отправка строго best-effort: ошибка письма не валит операцию.
type EmailService interface {
	NotifyArtistHired(artist *models.User, gig *models.Gig)
	NotifyCompletionConfirmed(artist *models.User, gig *models.Gig, rating int)
}

type emailService struct {
	provider email.Provider
}

func NewEmailService(provider email.Provider) EmailService {
	return &emailService{provider: provider}
}

func (s *emailService) NotifyArtistHired(artist *models.User, gig *models.Gig) {
	s.sendAsync(&email.Email{
		To:      []string{artist.Email},
		Subject: fmt.Sprintf("You've been hired for %s", gig.Name),
		Body: fmt.Sprintf(
			"Hi %s,\n\nCongratulations! You've been hired for \"%s\" at %s on %s.\n\nThe GigBook Team",
			artist.Name, gig.Name, gig.Venue, gig.Date.Format("2006-01-02"),
		),
	})
}

func (s *emailService) NotifyCompletionConfirmed(artist *models.User, gig *models.Gig, rating int) {
	s.sendAsync(&email.Email{
		To:      []string{artist.Email},
		Subject: fmt.Sprintf("Completion confirmed for %s", gig.Name),
		Body: fmt.Sprintf(
			"Hi %s,\n\nThe venue confirmed completion of \"%s\" and rated your performance %d/5.\n\nThe GigBook Team",
			artist.Name, gig.Name, rating,
		),
	})
}

func (s *emailService) sendAsync(msg *email.Email) {
	go func() {
		if err := s.provider.Send(msg); err != nil {
			logger.Error("failed to send notification email",
				"subject", msg.Subject,
				"error", err.Error(),
			)
		}
	}()
}
