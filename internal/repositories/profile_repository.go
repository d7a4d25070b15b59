package repositories

import (
	"context"
	"errors"

	"gigbook_backend/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.ArtistProfile) error
	Update(ctx context.Context, profile *models.ArtistProfile) error
	FindByUserID(ctx context.Context, userID uint) (*models.ArtistProfile, error)
	AddLink(ctx context.Context, link *models.ArtistLink) error
	// DeleteLink удаляет ссылку профиля; возвращает false, если ссылка
	// не существует или принадлежит другому профилю.
	DeleteLink(ctx context.Context, profileID, linkID uint) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.ArtistProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, profile *models.ArtistProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	err := r.db.WithContext(ctx).Preload("Links").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) AddLink(ctx context.Context, link *models.ArtistLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *profileRepository) DeleteLink(ctx context.Context, profileID, linkID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND artist_profile_id = ?", linkID, profileID).
		Delete(&models.ArtistLink{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
