package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPaymentOptionMissing  = errors.New("Either hourly rate or full gig amount must be provided")
	ErrPaymentOptionConflict = errors.New("Cannot provide both hourly rate and full gig amount")
	ErrEndBeforeStart        = errors.New("End time must be after start time")
	ErrTimesOutsideGigDate   = errors.New("Start time and end time must be on the same day as the gig date")
	ErrGigDateInPast         = errors.New("Date must be in the future")
)

type Gig struct {
	BaseModel
	UserID                uint       `gorm:"not null;index" json:"userId"`
	Name                  string     `gorm:"not null" json:"name"`
	Date                  time.Time  `gorm:"type:date;not null" json:"date"`
	Venue                 string     `gorm:"not null" json:"venue"`
	HourlyRate            *float64   `gorm:"type:decimal(10,2)" json:"hourlyRate"`
	FullGigAmount         *float64   `gorm:"type:decimal(10,2)" json:"fullGigAmount"`
	EstimatedAudienceSize *int       `json:"estimatedAudienceSize"`
	StartTime             time.Time  `gorm:"not null" json:"startTime"`
	EndTime               time.Time  `gorm:"not null" json:"endTime"`
	TotalHours            string     `json:"totalHours"`
	Equipment             *string    `gorm:"type:text" json:"equipment"`
	JobDetails            *string    `gorm:"type:text" json:"jobDetails"`
}

// ValidatePaymentOption проверяет взаимоисключающие поля оплаты:
// должно быть задано ровно одно из hourlyRate / fullGigAmount.
func ValidatePaymentOption(hourlyRate, fullGigAmount *float64) error {
	hasHourly := hourlyRate != nil
	hasFull := fullGigAmount != nil

	if !hasHourly && !hasFull {
		return ErrPaymentOptionMissing
	}
	if hasHourly && hasFull {
		return ErrPaymentOptionConflict
	}
	return nil
}

// Validate проверяет инварианты гига. Вызывается явно перед сохранением,
// вместо хуков персистентности.
func (g *Gig) Validate() error {
	if err := ValidatePaymentOption(g.HourlyRate, g.FullGigAmount); err != nil {
		return err
	}

	if !g.EndTime.After(g.StartTime) {
		return ErrEndBeforeStart
	}

	gigDay := g.Date.Format("2006-01-02")
	if g.StartTime.Format("2006-01-02") != gigDay || g.EndTime.Format("2006-01-02") != gigDay {
		return ErrTimesOutsideGigDate
	}

	return nil
}

// ComputeTotalHours пересчитывает производную длительность в формате HH:MM:SS
func (g *Gig) ComputeTotalHours() {
	diff := g.EndTime.Sub(g.StartTime)

	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60
	seconds := int(diff.Seconds()) % 60

	g.TotalHours = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
