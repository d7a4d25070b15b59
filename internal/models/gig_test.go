package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(v float64) *float64 { return &v }

func TestValidatePaymentOption(t *testing.T) {
	tests := []struct {
		name    string
		hourly  *float64
		full    *float64
		wantErr error
	}{
		{"only hourly", rate(100), nil, nil},
		{"only full", nil, rate(500), nil},
		{"neither", nil, nil, ErrPaymentOptionMissing},
		{"both", rate(100), rate(500), ErrPaymentOptionConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaymentOption(tt.hourly, tt.full)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGigValidate(t *testing.T) {
	date := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	base := Gig{
		Name:       "Jazz Night",
		Date:       date,
		Venue:      "The Blue Note",
		HourlyRate: rate(100),
		StartTime:  date.Add(20 * time.Hour),
		EndTime:    date.Add(23 * time.Hour),
	}

	require.NoError(t, base.Validate())

	endBeforeStart := base
	endBeforeStart.EndTime = base.StartTime.Add(-time.Hour)
	assert.ErrorIs(t, endBeforeStart.Validate(), ErrEndBeforeStart)

	crossesMidnight := base
	crossesMidnight.EndTime = date.Add(25 * time.Hour)
	assert.ErrorIs(t, crossesMidnight.Validate(), ErrTimesOutsideGigDate)

	noPayment := base
	noPayment.HourlyRate = nil
	assert.ErrorIs(t, noPayment.Validate(), ErrPaymentOptionMissing)
}

func TestGigComputeTotalHours(t *testing.T) {
	date := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)

	g := Gig{StartTime: date.Add(20 * time.Hour), EndTime: date.Add(23*time.Hour + 30*time.Minute)}
	g.ComputeTotalHours()
	assert.Equal(t, "03:30:00", g.TotalHours)

	g = Gig{StartTime: date, EndTime: date.Add(45*time.Minute + 15*time.Second)}
	g.ComputeTotalHours()
	assert.Equal(t, "00:45:15", g.TotalHours)
}
