package services

import (
	"context"
	"encoding/json"

	"gigbook_backend/internal/models"
	"gigbook_backend/internal/repositories"
	"gigbook_backend/internal/services/dto"
	"gigbook_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const profileDomain = "profile"

type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*models.ArtistProfile, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*models.ArtistProfile, error)
	AddLink(ctx context.Context, userID uint, req *dto.AddLinkRequest) (*models.ArtistLink, error)
	DeleteLink(ctx context.Context, userID, linkID uint) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID uint) (*models.ArtistProfile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if profile == nil {
		return nil, apperrors.ErrNotFound(profileDomain, "Profile not found")
	}
	return profile, nil
}

// UpdateProfile создает профиль при первом обращении (upsert)
func (s *profileService) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*models.ArtistProfile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	isNew := profile == nil
	if isNew {
		profile = &models.ArtistProfile{UserID: userID}
	}

	profile.Bio = req.Bio
	profile.PhoneNumber = req.PhoneNumber
	profile.City = req.City

	if req.Genres != nil {
		genres, err := json.Marshal(req.Genres)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Genres = datatypes.JSON(genres)
	}

	if isNew {
		err = s.profileRepo.Create(ctx, profile)
	} else {
		err = s.profileRepo.Update(ctx, profile)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) AddLink(ctx context.Context, userID uint, req *dto.AddLinkRequest) (*models.ArtistLink, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	link := &models.ArtistLink{
		ArtistProfileID: profile.ID,
		Title:           req.Title,
		URL:             req.URL,
	}
	if err := s.profileRepo.AddLink(ctx, link); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return link, nil
}

func (s *profileService) DeleteLink(ctx context.Context, userID, linkID uint) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	deleted, err := s.profileRepo.DeleteLink(ctx, profile.ID, linkID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !deleted {
		return apperrors.ErrNotFound(profileDomain, "Link not found")
	}
	return nil
}
