package models

import "time"

// RatingEvent - одна подтвержденная оценка артиста площадкой
type RatingEvent struct {
	GigID      uint        `json:"gigId"`
	ProposalID uint        `json:"proposalId"`
	VenueID    uint        `json:"venueId"`
	VenueName  string      `json:"venueName"`
	Rating     int         `json:"rating"`
	Tags       []RatingTag `json:"tags"`
	Comments   string      `json:"comments"`
	RatedAt    time.Time   `json:"ratedAt"`
}

// ArtistRating - накопленная репутация артиста.
// Производные поля пересчитываются целиком по списку событий.
type ArtistRating struct {
	ArtistID      uint              `json:"artistId"`
	Ratings       []RatingEvent     `json:"ratings"`
	AverageRating float64           `json:"averageRating"`
	RatingCount   int               `json:"ratingCount"`
	CommonTags    map[RatingTag]int `json:"commonTags"`
}

// Recompute полностью пересчитывает производные поля по списку событий.
// Не инкрементальный - повторный вызов по тому же списку дает тот же результат.
func (r *ArtistRating) Recompute() {
	r.RatingCount = len(r.Ratings)

	sum := 0
	tags := make(map[RatingTag]int)
	for _, event := range r.Ratings {
		sum += event.Rating
		for _, tag := range event.Tags {
			tags[tag]++
		}
	}

	if r.RatingCount > 0 {
		r.AverageRating = float64(sum) / float64(r.RatingCount)
	} else {
		r.AverageRating = 0
	}
	r.CommonTags = tags
}

// Clone возвращает глубокую копию агрегата
func (r *ArtistRating) Clone() *ArtistRating {
	cp := *r
	cp.Ratings = make([]RatingEvent, len(r.Ratings))
	for i, event := range r.Ratings {
		cp.Ratings[i] = event
		cp.Ratings[i].Tags = append([]RatingTag(nil), event.Tags...)
	}
	cp.CommonTags = make(map[RatingTag]int, len(r.CommonTags))
	for tag, count := range r.CommonTags {
		cp.CommonTags[tag] = count
	}
	return &cp
}
