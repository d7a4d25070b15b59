package dto

import "gigbook_backend/internal/models"

// SubmitProposalRequest - отклик артиста на гиг. Ровно одно из полей
// оплаты должно быть задано; взаимоисключение проверяет сервис,
// чтобы отдать клиенту исходные сообщения.
type SubmitProposalRequest struct {
	HourlyRate    *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
	FullGigAmount *float64 `json:"fullGigAmount" validate:"omitempty,gte=0"`
	CoverLetter   string   `json:"coverLetter" validate:"required"`
}

type RequestCompletionRequest struct {
	ConfirmationCode string `json:"confirmationCode" validate:"required,min=3,max=50"`
	LocationAddress  string `json:"locationAddress" validate:"required,min=5,max=500"`
}

// ConfirmCompletionRequest - подтверждение завершения с оценкой.
// Словарь тегов проверяет сервис (сообщение перечисляет невалидные).
type ConfirmCompletionRequest struct {
	Rating   int                `json:"rating" validate:"ratingrange"`
	Tags     []models.RatingTag `json:"tags"`
	Comments string             `json:"comments" validate:"omitempty,max=1000"`
}

// RatingSummary - сводка репутации артиста без списка событий
type RatingSummary struct {
	ArtistID      uint                     `json:"artistId"`
	AverageRating float64                  `json:"averageRating"`
	RatingCount   int                      `json:"ratingCount"`
	CommonTags    map[models.RatingTag]int `json:"commonTags"`
}

func ToRatingSummary(r *models.ArtistRating) RatingSummary {
	return RatingSummary{
		ArtistID:      r.ArtistID,
		AverageRating: r.AverageRating,
		RatingCount:   r.RatingCount,
		CommonTags:    r.CommonTags,
	}
}

// ConfirmCompletionResponse - результат подтверждения: обновленное
// предложение плюс свежая сводка рейтинга артиста.
type ConfirmCompletionResponse struct {
	Proposal     *models.Proposal `json:"proposal"`
	ArtistRating RatingSummary    `json:"artistRating"`
}
