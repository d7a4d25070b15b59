package services

import (
	"context"
	"time"

	"gigbook_backend/internal/models"
	"gigbook_backend/internal/repositories"
	"gigbook_backend/internal/services/dto"
	"gigbook_backend/pkg/apperrors"
)

const gigDomain = "gig"

type GigService interface {
	// Venue operations
	CreateGig(ctx context.Context, venueUserID uint, req *dto.GigRequest) (*models.Gig, error)
	ListOwnGigs(ctx context.Context, venueUserID uint, query *dto.ListGigsQuery) (*dto.GigListResponse, error)
	GetOwnGig(ctx context.Context, venueUserID, gigID uint) (*models.Gig, error)
	UpdateGig(ctx context.Context, venueUserID, gigID uint, req *dto.GigRequest) (*models.Gig, error)
	DeleteGig(ctx context.Context, venueUserID, gigID uint) error

	// Artist operations
	BrowseGigs(ctx context.Context, query *dto.ListGigsQuery) (*dto.GigListResponse, error)
	GetGig(ctx context.Context, gigID uint) (*models.Gig, error)
}

type gigService struct {
	gigRepo repositories.GigRepository
}

func NewGigService(gigRepo repositories.GigRepository) GigService {
	return &gigService{gigRepo: gigRepo}
}

// ---------------- Venue Operations ----------------

func (s *gigService) CreateGig(ctx context.Context, venueUserID uint, req *dto.GigRequest) (*models.Gig, error) {
	gig, err := s.buildGig(venueUserID, req)
	if err != nil {
		return nil, err
	}

	// сравнение по календарному дню хоста; Truncate(24h) режет от эпохи UTC
	// и сдвигает границу дня на смещение таймзоны
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if gig.Date.Before(today) {
		return nil, apperrors.FieldValidationError("date", models.ErrGigDateInPast.Error())
	}

	if err := s.gigRepo.Create(ctx, gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *gigService) ListOwnGigs(ctx context.Context, venueUserID uint, query *dto.ListGigsQuery) (*dto.GigListResponse, error) {
	page, limit := query.Normalize(10)
	offset := (page - 1) * limit

	gigs, total, err := s.gigRepo.ListByOwner(ctx, venueUserID, query.Search, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.GigListResponse{
		Gigs:       gigs,
		Pagination: dto.NewPaginationMeta(int(total), page, limit),
	}, nil
}

func (s *gigService) GetOwnGig(ctx context.Context, venueUserID, gigID uint) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByIDAndOwner(ctx, gigID, venueUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if gig == nil {
		return nil, apperrors.ErrNotFound(gigDomain, "Gig not found")
	}
	return gig, nil
}

// UpdateGig заменяет гиг целиком и перепроверяет все инварианты
func (s *gigService) UpdateGig(ctx context.Context, venueUserID, gigID uint, req *dto.GigRequest) (*models.Gig, error) {
	existing, err := s.GetOwnGig(ctx, venueUserID, gigID)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildGig(venueUserID, req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.gigRepo.Update(ctx, updated); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *gigService) DeleteGig(ctx context.Context, venueUserID, gigID uint) error {
	gig, err := s.GetOwnGig(ctx, venueUserID, gigID)
	if err != nil {
		return err
	}
	if err := s.gigRepo.Delete(ctx, gig); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Artist Operations ----------------

func (s *gigService) BrowseGigs(ctx context.Context, query *dto.ListGigsQuery) (*dto.GigListResponse, error) {
	page, limit := query.Normalize(10)
	offset := (page - 1) * limit

	gigs, total, err := s.gigRepo.ListAll(ctx, query.Search, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.GigListResponse{
		Gigs:       gigs,
		Pagination: dto.NewPaginationMeta(int(total), page, limit),
	}, nil
}

func (s *gigService) GetGig(ctx context.Context, gigID uint) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByID(ctx, gigID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if gig == nil {
		return nil, apperrors.ErrNotFound(gigDomain, "Gig not found")
	}
	return gig, nil
}

// ---------------- Helpers ----------------

// buildGig парсит даты из запроса и проверяет инварианты гига
func (s *gigService) buildGig(venueUserID uint, req *dto.GigRequest) (*models.Gig, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.FieldValidationError("date", "Must be a valid date")
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, apperrors.FieldValidationError("startTime", "Must be a valid date")
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, apperrors.FieldValidationError("endTime", "Must be a valid date")
	}

	gig := &models.Gig{
		UserID:                venueUserID,
		Name:                  req.Name,
		Date:                  date,
		Venue:                 req.Venue,
		HourlyRate:            req.HourlyRate,
		FullGigAmount:         req.FullGigAmount,
		EstimatedAudienceSize: req.EstimatedAudienceSize,
		StartTime:             startTime,
		EndTime:               endTime,
		Equipment:             req.Equipment,
		JobDetails:            req.JobDetails,
	}

	if err := gig.Validate(); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	gig.ComputeTotalHours()

	return gig, nil
}
