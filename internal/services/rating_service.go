package services

import (
	"context"

	"gigbook_backend/internal/models"
	"gigbook_backend/internal/repositories"
	"gigbook_backend/pkg/apperrors"
)

type RatingService interface {
	GetArtistRating(ctx context.Context, artistID uint) (*models.ArtistRating, error)
}

type ratingService struct {
	store    *repositories.RatingStore
	userRepo repositories.UserRepository
}

func NewRatingService(store *repositories.RatingStore, userRepo repositories.UserRepository) RatingService {
	return &ratingService{store: store, userRepo: userRepo}
}

func (s *ratingService) GetArtistRating(ctx context.Context, artistID uint) (*models.ArtistRating, error) {
	artist, err := s.userRepo.FindByID(ctx, artistID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if artist == nil || artist.Role != models.UserRoleArtist {
		return nil, apperrors.ErrNotFound("user", "User not found")
	}

	aggregate, ok := s.store.Find(artistID)
	if !ok {
		// артист без оценок - пустой агрегат, а не 404
		return &models.ArtistRating{
			ArtistID:   artistID,
			Ratings:    []models.RatingEvent{},
			CommonTags: map[models.RatingTag]int{},
		}, nil
	}
	return aggregate, nil
}
