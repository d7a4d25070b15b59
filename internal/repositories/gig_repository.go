package repositories

import (
	"context"
	"errors"
	"strings"

	"gigbook_backend/internal/models"

	"gorm.io/gorm"
)

type GigRepository interface {
	Create(ctx context.Context, gig *models.Gig) error
	Update(ctx context.Context, gig *models.Gig) error
	Delete(ctx context.Context, gig *models.Gig) error
	FindByID(ctx context.Context, id uint) (*models.Gig, error)
	// FindByIDAndOwner находит гиг только если он принадлежит владельцу.
	// "чужой" и "несуществующий" неразличимы для вызывающего кода.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Gig, error)
	ListByOwner(ctx context.Context, ownerID uint, search string, limit, offset int) ([]models.Gig, int64, error)
	ListAll(ctx context.Context, search string, limit, offset int) ([]models.Gig, int64, error)
}

type gigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &gigRepository{db: db}
}

func (r *gigRepository) Create(ctx context.Context, gig *models.Gig) error {
	return r.db.WithContext(ctx).Create(gig).Error
}

func (r *gigRepository) Update(ctx context.Context, gig *models.Gig) error {
	return r.db.WithContext(ctx).Save(gig).Error
}

func (r *gigRepository) Delete(ctx context.Context, gig *models.Gig) error {
	return r.db.WithContext(ctx).Delete(gig).Error
}

func (r *gigRepository) FindByID(ctx context.Context, id uint) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.WithContext(ctx).First(&gig, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

func (r *gigRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&gig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

func (r *gigRepository) ListByOwner(ctx context.Context, ownerID uint, search string, limit, offset int) ([]models.Gig, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Gig{}).Where("user_id = ?", ownerID)
	return r.list(query, search, limit, offset)
}

func (r *gigRepository) ListAll(ctx context.Context, search string, limit, offset int) ([]models.Gig, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Gig{})
	return r.list(query, search, limit, offset)
}

func (r *gigRepository) list(query *gorm.DB, search string, limit, offset int) ([]models.Gig, int64, error) {
	search = strings.TrimSpace(search)
	if search != "" {
		// LOWER+LIKE вместо ILIKE, чтобы работало и в postgres, и в sqlite
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(venue) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var gigs []models.Gig
	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&gigs).Error
	if err != nil {
		return nil, 0, err
	}
	return gigs, total, nil
}
