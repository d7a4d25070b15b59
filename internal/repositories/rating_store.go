package repositories

import (
	"sync"

	"gigbook_backend/internal/models"
)

// RatingStore - потокобезопасный агрегат репутации артистов.
// Производные поля (averageRating, ratingCount, commonTags)
// пересчитываются целиком при каждой записи, под мьютексом.
type RatingStore struct {
	mu      sync.RWMutex
	ratings map[uint]*models.ArtistRating
}

func NewRatingStore() *RatingStore {
	return &RatingStore{ratings: make(map[uint]*models.ArtistRating)}
}

// Record добавляет событие оценки и возвращает свежий снимок агрегата
func (s *RatingStore) Record(artistID uint, event models.RatingEvent) *models.ArtistRating {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ratings[artistID]
	if !ok {
		r = &models.ArtistRating{ArtistID: artistID}
		s.ratings[artistID] = r
	}

	r.Ratings = append(r.Ratings, event)
	r.Recompute()

	return r.Clone()
}

// Find возвращает снимок агрегата артиста, если оценки уже были
func (s *RatingStore) Find(artistID uint) (*models.ArtistRating, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.ratings[artistID]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}
