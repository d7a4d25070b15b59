package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"gigbook_backend/internal/models"
	"gigbook_backend/internal/repositories"
	"gigbook_backend/internal/services/dto"
	"gigbook_backend/pkg/apperrors"
)

type MessageService interface {
	PostMessage(ctx context.Context, senderID, proposalID uint, req *dto.PostMessageRequest) (*models.Message, error)
	ListMessages(ctx context.Context, requesterID, proposalID uint, query *dto.PaginationQuery) (*dto.MessageListResponse, error)
}

type messageService struct {
	store    *repositories.MessageStore
	registry *repositories.ProposalRegistry
	gigRepo  repositories.GigRepository
}

func NewMessageService(
	store *repositories.MessageStore,
	registry *repositories.ProposalRegistry,
	gigRepo repositories.GigRepository,
) MessageService {
	return &messageService{
		store:    store,
		registry: registry,
		gigRepo:  gigRepo,
	}
}

func (s *messageService) PostMessage(ctx context.Context, senderID, proposalID uint, req *dto.PostMessageRequest) (*models.Message, error) {
	senderType, err := s.authorizeParticipant(ctx, senderID, proposalID, "You don't have permission to send messages")
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, apperrors.FieldValidationError("message", "This field is required")
	}
	// лимит в символах, не в байтах
	if utf8.RuneCountInString(text) > 1000 {
		return nil, apperrors.FieldValidationError("message", "Must be at most 1000 characters long")
	}

	message := s.store.Append(proposalID, senderID, senderType, text)
	return &message, nil
}

func (s *messageService) ListMessages(ctx context.Context, requesterID, proposalID uint, query *dto.PaginationQuery) (*dto.MessageListResponse, error) {
	if _, err := s.authorizeParticipant(ctx, requesterID, proposalID, "You don't have permission to view these messages"); err != nil {
		return nil, err
	}

	page, limit := query.Normalize(20)
	offset := (page - 1) * limit

	messages, total := s.store.ListByProposal(proposalID, offset, limit)

	return &dto.MessageListResponse{
		Messages:   messages,
		Pagination: dto.NewPaginationMeta(total, page, limit),
	}, nil
}

// authorizeParticipant пускает к переписке только две стороны
// предложения: артиста и владельца гига. senderType выводится из
// того, какой стороной оказался пользователь.
func (s *messageService) authorizeParticipant(ctx context.Context, userID, proposalID uint, denyMessage string) (models.UserRole, error) {
	proposal, ok := s.registry.FindByID(proposalID)
	if !ok {
		return "", apperrors.ErrNotFound(proposalDomain, "Proposal not found")
	}

	gig, err := s.gigRepo.FindByID(ctx, proposal.GigID)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if gig == nil {
		return "", apperrors.ErrNotFound(gigDomain, "Gig not found")
	}

	switch userID {
	case proposal.ArtistID:
		return models.UserRoleArtist, nil
	case gig.UserID:
		return models.UserRoleVenue, nil
	default:
		return "", apperrors.NewForbiddenError(denyMessage)
	}
}
