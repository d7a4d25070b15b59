package dto

import "gigbook_backend/internal/models"

// GigRequest - тело создания/полного обновления гига.
// Даты и время приходят строками и парсятся в сервисе:
// date в формате 2006-01-02, startTime/endTime в RFC3339.
type GigRequest struct {
	Name                  string   `json:"name" validate:"required,min=3,max=200"`
	Date                  string   `json:"date" validate:"required,datetime=2006-01-02"`
	Venue                 string   `json:"venue" validate:"required,max=200"`
	HourlyRate            *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
	FullGigAmount         *float64 `json:"fullGigAmount" validate:"omitempty,gte=0"`
	EstimatedAudienceSize *int     `json:"estimatedAudienceSize" validate:"omitempty,gte=0"`
	StartTime             string   `json:"startTime" validate:"required"`
	EndTime               string   `json:"endTime" validate:"required"`
	Equipment             *string  `json:"equipment"`
	JobDetails            *string  `json:"jobDetails"`
}

// ListGigsQuery - параметры листинга гигов
type ListGigsQuery struct {
	PaginationQuery
	Search string `form:"search"`
}

type GigListResponse struct {
	Gigs       []models.Gig   `json:"gigs"`
	Pagination PaginationMeta `json:"pagination"`
}
