package models

import "time"

// Proposal - отклик артиста на гиг. Живет в реестре предложений,
// переходы статуса только вперед: pending -> in-progress -> completed.
type Proposal struct {
	ID                uint               `json:"id"`
	GigID             uint               `json:"gigId"`
	ArtistID          uint               `json:"artistId"`
	HourlyRate        *float64           `json:"hourlyRate"`
	FullGigAmount     *float64           `json:"fullGigAmount"`
	CoverLetter       string             `json:"coverLetter"`
	Status            ProposalStatus     `json:"status"`
	CreatedAt         time.Time          `json:"createdAt"`
	HiredAt           *time.Time         `json:"hiredAt"`
	CompletionRequest *CompletionRequest `json:"completionRequest,omitempty"`
}

// CompletionRequest - рукопожатие артист/площадка о завершении гига
type CompletionRequest struct {
	RequestedAt      time.Time        `json:"requestedAt"`
	ConfirmationCode string           `json:"confirmationCode"`
	LocationAddress  string           `json:"locationAddress"`
	Status           CompletionStatus `json:"status"`
	ConfirmedAt      *time.Time       `json:"confirmedAt,omitempty"`
	ConfirmedBy      uint             `json:"confirmedBy,omitempty"`
	VenueRating      *VenueRating     `json:"venueRating,omitempty"`
}

// VenueRating - оценка площадки, неизменяема после записи
type VenueRating struct {
	Rating   int         `json:"rating"`
	Tags     []RatingTag `json:"tags"`
	Comments string      `json:"comments"`
	RatedBy  uint        `json:"ratedBy"`
}

// Clone возвращает глубокую копию предложения, чтобы вызывающий код
// не мог мутировать состояние реестра в обход критической секции.
func (p *Proposal) Clone() *Proposal {
	cp := *p
	if p.HiredAt != nil {
		hiredAt := *p.HiredAt
		cp.HiredAt = &hiredAt
	}
	if p.HourlyRate != nil {
		rate := *p.HourlyRate
		cp.HourlyRate = &rate
	}
	if p.FullGigAmount != nil {
		amount := *p.FullGigAmount
		cp.FullGigAmount = &amount
	}
	if p.CompletionRequest != nil {
		req := *p.CompletionRequest
		if p.CompletionRequest.ConfirmedAt != nil {
			confirmedAt := *p.CompletionRequest.ConfirmedAt
			req.ConfirmedAt = &confirmedAt
		}
		if p.CompletionRequest.VenueRating != nil {
			rating := *p.CompletionRequest.VenueRating
			rating.Tags = append([]RatingTag(nil), rating.Tags...)
			req.VenueRating = &rating
		}
		cp.CompletionRequest = &req
	}
	return &cp
}
