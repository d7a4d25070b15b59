package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtistRatingRecompute(t *testing.T) {
	r := ArtistRating{
		ArtistID: 10,
		Ratings: []RatingEvent{
			{Rating: 5, Tags: []RatingTag{RatingTagProfessional}},
			{Rating: 2, Tags: []RatingTag{RatingTagProfessional, RatingTagOther}},
		},
	}

	r.Recompute()

	assert.Equal(t, 2, r.RatingCount)
	assert.InDelta(t, 3.5, r.AverageRating, 1e-9)
	assert.Equal(t, 2, r.CommonTags[RatingTagProfessional])
	assert.Equal(t, 1, r.CommonTags[RatingTagOther])

	// повторный пересчет по тому же списку ничего не меняет
	r.Recompute()
	assert.Equal(t, 2, r.RatingCount)
	assert.InDelta(t, 3.5, r.AverageRating, 1e-9)
	assert.Equal(t, 2, r.CommonTags[RatingTagProfessional])
}

func TestArtistRatingRecompute_Empty(t *testing.T) {
	r := ArtistRating{ArtistID: 10}
	r.Recompute()

	assert.Zero(t, r.RatingCount)
	assert.Zero(t, r.AverageRating)
	assert.Empty(t, r.CommonTags)
}

func TestInvalidRatingTags(t *testing.T) {
	invalid := InvalidRatingTags([]RatingTag{RatingTagFun, "Amazing", RatingTagOther, "Sloppy"})
	assert.Equal(t, []RatingTag{"Amazing", "Sloppy"}, invalid)

	assert.Nil(t, InvalidRatingTags([]RatingTag{RatingTagProfessional}))
	assert.Nil(t, InvalidRatingTags(nil))
}
