package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gigbook_backend/internal/models"
	"gigbook_backend/internal/repositories"
	"gigbook_backend/internal/services/dto"
	"gigbook_backend/pkg/apperrors"
)

const proposalDomain = "proposal"

type ProposalService interface {
	// Artist operations
	SubmitProposal(ctx context.Context, artistID, gigID uint, req *dto.SubmitProposalRequest) (*models.Proposal, error)
	RequestCompletion(ctx context.Context, artistID, gigID uint, req *dto.RequestCompletionRequest) (*models.Proposal, error)

	// Venue operations
	GetGigProposals(ctx context.Context, venueUserID, gigID uint) ([]*models.Proposal, error)
	HireArtist(ctx context.Context, venueUserID, proposalID uint) (*models.Proposal, error)
	ConfirmCompletion(ctx context.Context, venueUserID, gigID uint, req *dto.ConfirmCompletionRequest) (*dto.ConfirmCompletionResponse, error)
}

type proposalService struct {
	registry    *repositories.ProposalRegistry
	ratingStore *repositories.RatingStore
	gigRepo     repositories.GigRepository
	userRepo    repositories.UserRepository
	emails      EmailService
}

func NewProposalService(
	registry *repositories.ProposalRegistry,
	ratingStore *repositories.RatingStore,
	gigRepo repositories.GigRepository,
	userRepo repositories.UserRepository,
	emails EmailService,
) ProposalService {
	return &proposalService{
		registry:    registry,
		ratingStore: ratingStore,
		gigRepo:     gigRepo,
		userRepo:    userRepo,
		emails:      emails,
	}
}

// ---------------- Artist Operations ----------------

func (s *proposalService) SubmitProposal(ctx context.Context, artistID, gigID uint, req *dto.SubmitProposalRequest) (*models.Proposal, error) {
	artist, err := s.userRepo.FindByID(ctx, artistID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if artist == nil {
		return nil, apperrors.ErrNotFound("user", "User not found")
	}
	if artist.Role != models.UserRoleArtist {
		return nil, apperrors.NewForbiddenError("Only artist users can submit proposals")
	}

	gig, err := s.gigRepo.FindByID(ctx, gigID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if gig == nil {
		return nil, apperrors.ErrNotFound(gigDomain, "Gig not found")
	}

	if err := models.ValidatePaymentOption(req.HourlyRate, req.FullGigAmount); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	return s.registry.Create(gigID, artistID, req.HourlyRate, req.FullGigAmount, req.CoverLetter), nil
}

func (s *proposalService) RequestCompletion(ctx context.Context, artistID, gigID uint, req *dto.RequestCompletionRequest) (*models.Proposal, error) {
	proposal, err := s.registry.AttachCompletionRequest(gigID, artistID, req.ConfirmationCode, req.LocationAddress, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNoProposalForGig):
			return nil, apperrors.ErrNotFound(proposalDomain, "No proposal found for this gig")
		case errors.Is(err, repositories.ErrProposalNotInProgress):
			return nil, apperrors.ErrInvalidStatus(proposalDomain, "You can only request completion for in-progress gigs")
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return proposal, nil
}

// ---------------- Venue Operations ----------------

func (s *proposalService) GetGigProposals(ctx context.Context, venueUserID, gigID uint) ([]*models.Proposal, error) {
	if _, err := s.findOwnedGig(ctx, venueUserID, gigID); err != nil {
		return nil, err
	}
	return s.registry.FindByGig(gigID), nil
}

func (s *proposalService) HireArtist(ctx context.Context, venueUserID, proposalID uint) (*models.Proposal, error) {
	proposal, ok := s.registry.FindByID(proposalID)
	if !ok {
		return nil, apperrors.ErrNotFound(proposalDomain, "Proposal not found")
	}

	gig, err := s.findOwnedGig(ctx, venueUserID, proposal.GigID)
	if err != nil {
		return nil, err
	}

	// переход pending -> in-progress атомарен внутри реестра;
	// из двух конкурентных наймов пройдет только один
	hired, err := s.registry.Hire(proposalID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProposalNotFound):
			return nil, apperrors.ErrNotFound(proposalDomain, "Proposal not found")
		case errors.Is(err, repositories.ErrProposalNotPending):
			return nil, apperrors.ErrInvalidStatus(proposalDomain, "This proposal is no longer pending")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	s.notifyHired(ctx, hired.ArtistID, gig)

	return hired, nil
}

func (s *proposalService) ConfirmCompletion(ctx context.Context, venueUserID, gigID uint, req *dto.ConfirmCompletionRequest) (*dto.ConfirmCompletionResponse, error) {
	gig, err := s.findOwnedGig(ctx, venueUserID, gigID)
	if err != nil {
		return nil, err
	}

	if invalid := models.InvalidRatingTags(req.Tags); len(invalid) > 0 {
		names := make([]string, len(invalid))
		for i, tag := range invalid {
			names[i] = string(tag)
		}
		return nil, apperrors.NewBadRequestError("Invalid tags: " + strings.Join(names, ", "))
	}

	now := time.Now()
	rating := models.VenueRating{
		Rating:   req.Rating,
		Tags:     req.Tags,
		Comments: req.Comments,
		RatedBy:  venueUserID,
	}

	proposal, err := s.registry.ConfirmCompletion(gigID, venueUserID, rating, now)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNoProposalForGig):
			return nil, apperrors.ErrNotFound(proposalDomain, "No proposal found for this gig")
		case errors.Is(err, repositories.ErrNoCompletionRequest):
			return nil, apperrors.ErrNotFound(proposalDomain, "No completion request found for this gig")
		case errors.Is(err, repositories.ErrCompletionNotPending):
			return nil, apperrors.ErrInvalidStatus(proposalDomain, "Completion request is not in pending status")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	// в событии рейтинга имя подтвердившего пользователя площадки,
	// не название места проведения гига
	venueName := gig.Venue
	if venueUser, err := s.userRepo.FindByID(ctx, venueUserID); err == nil && venueUser != nil {
		venueName = venueUser.Name
	}

	aggregate := s.ratingStore.Record(proposal.ArtistID, models.RatingEvent{
		GigID:      gigID,
		ProposalID: proposal.ID,
		VenueID:    venueUserID,
		VenueName:  venueName,
		Rating:     req.Rating,
		Tags:       req.Tags,
		Comments:   req.Comments,
		RatedAt:    now,
	})

	s.notifyCompleted(ctx, proposal.ArtistID, gig, req.Rating)

	return &dto.ConfirmCompletionResponse{
		Proposal:     proposal,
		ArtistRating: dto.ToRatingSummary(aggregate),
	}, nil
}

// ---------------- Helpers ----------------

// findOwnedGig отдает один и тот же 404 для несуществующего и чужого
// гига, не подтверждая существование чужого ресурса
func (s *proposalService) findOwnedGig(ctx context.Context, venueUserID, gigID uint) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByIDAndOwner(ctx, gigID, venueUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if gig == nil {
		return nil, apperrors.ErrNotFound(gigDomain, "Gig not found or you don't have permission")
	}
	return gig, nil
}

func (s *proposalService) notifyHired(ctx context.Context, artistID uint, gig *models.Gig) {
	artist, err := s.userRepo.FindByID(ctx, artistID)
	if err != nil || artist == nil {
		return
	}
	s.emails.NotifyArtistHired(artist, gig)
}

func (s *proposalService) notifyCompleted(ctx context.Context, artistID uint, gig *models.Gig, rating int) {
	artist, err := s.userRepo.FindByID(ctx, artistID)
	if err != nil || artist == nil {
		return
	}
	s.emails.NotifyCompletionConfirmed(artist, gig, rating)
}
