package repositories

import (
	"testing"
	"time"

	"gigbook_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingEvent(rating int, tags ...models.RatingTag) models.RatingEvent {
	return models.RatingEvent{
		GigID:   1,
		VenueID: 20,
		Rating:  rating,
		Tags:    tags,
		RatedAt: time.Now(),
	}
}

func TestRatingStore_Record(t *testing.T) {
	s := NewRatingStore()

	first := s.Record(10, ratingEvent(5, models.RatingTagProfessional))
	assert.Equal(t, uint(10), first.ArtistID)
	assert.Equal(t, float64(5), first.AverageRating)
	assert.Equal(t, 1, first.RatingCount)
	assert.Equal(t, 1, first.CommonTags[models.RatingTagProfessional])

	second := s.Record(10, ratingEvent(3, models.RatingTagProfessional, models.RatingTagFun))
	assert.Equal(t, float64(4), second.AverageRating)
	assert.Equal(t, 2, second.RatingCount)
	assert.Equal(t, 2, second.CommonTags[models.RatingTagProfessional])
	assert.Equal(t, 1, second.CommonTags[models.RatingTagFun])
}

func TestRatingStore_ArtistsIndependent(t *testing.T) {
	s := NewRatingStore()
	s.Record(10, ratingEvent(5))
	s.Record(11, ratingEvent(1))

	a, ok := s.Find(10)
	require.True(t, ok)
	b, ok := s.Find(11)
	require.True(t, ok)

	assert.Equal(t, float64(5), a.AverageRating)
	assert.Equal(t, float64(1), b.AverageRating)
}

func TestRatingStore_Find_Unknown(t *testing.T) {
	s := NewRatingStore()

	_, ok := s.Find(404)
	assert.False(t, ok)
}

func TestRatingStore_SnapshotIsolation(t *testing.T) {
	s := NewRatingStore()
	snapshot := s.Record(10, ratingEvent(5, models.RatingTagProfessional))

	// мутация снимка не должна влиять на хранимый агрегат
	snapshot.CommonTags[models.RatingTagOther] = 99
	snapshot.Ratings[0].Rating = 1

	stored, ok := s.Find(10)
	require.True(t, ok)
	assert.Zero(t, stored.CommonTags[models.RatingTagOther])
	assert.Equal(t, 5, stored.Ratings[0].Rating)
}
