package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gigbook_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGigRequest() *dto.GigRequest {
	rate := 150.0
	return &dto.GigRequest{
		Name:      "Friday Jazz Night",
		Date:      "2030-06-15",
		Venue:     "The Blue Note",
		StartTime: "2030-06-15T20:00:00Z",
		EndTime:   "2030-06-15T23:30:00Z",

		HourlyRate: &rate,
	}
}

func TestCreateGig(t *testing.T) {
	env := newTestEnv(t)

	gig, err := env.gigs.CreateGig(context.Background(), env.venue.ID, validGigRequest())
	require.NoError(t, err)

	assert.NotZero(t, gig.ID)
	assert.Equal(t, env.venue.ID, gig.UserID)
	assert.Equal(t, "03:30:00", gig.TotalHours)
}

func TestCreateGig_PaymentExclusivity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := validGigRequest()
	req.HourlyRate = nil
	_, err := env.gigs.CreateGig(ctx, env.venue.ID, req)
	assertAppError(t, err, http.StatusBadRequest, "Either hourly rate or full gig amount must be provided")

	req = validGigRequest()
	amount := 500.0
	req.FullGigAmount = &amount
	_, err = env.gigs.CreateGig(ctx, env.venue.ID, req)
	assertAppError(t, err, http.StatusBadRequest, "Cannot provide both hourly rate and full gig amount")
}

func TestCreateGig_TimeInvariants(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := validGigRequest()
	req.EndTime = "2030-06-15T19:00:00Z"
	_, err := env.gigs.CreateGig(ctx, env.venue.ID, req)
	assertAppError(t, err, http.StatusBadRequest, "End time must be after start time")

	req = validGigRequest()
	req.EndTime = "2030-06-16T01:00:00Z"
	_, err = env.gigs.CreateGig(ctx, env.venue.ID, req)
	assertAppError(t, err, http.StatusBadRequest, "Start time and end time must be on the same day as the gig date")

	req = validGigRequest()
	req.Date = "2020-06-15"
	req.StartTime = "2020-06-15T20:00:00Z"
	req.EndTime = "2020-06-15T23:00:00Z"
	_, err = env.gigs.CreateGig(ctx, env.venue.ID, req)
	assertAppError(t, err, http.StatusBadRequest, "Validation Error")
}

func TestCreateGig_TodayAccepted(t *testing.T) {
	env := newTestEnv(t)

	// гиг на сегодняшний календарный день проходит независимо от таймзоны хоста
	today := time.Now().Format("2006-01-02")
	req := validGigRequest()
	req.Date = today
	req.StartTime = today + "T20:00:00Z"
	req.EndTime = today + "T23:00:00Z"

	gig, err := env.gigs.CreateGig(context.Background(), env.venue.ID, req)
	require.NoError(t, err)
	assert.Equal(t, today, gig.Date.Format("2006-01-02"))
}

func TestGetOwnGig_Masking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// чужой и несуществующий гиг выглядят одинаково
	_, err := env.gigs.GetOwnGig(ctx, env.artist.ID, env.gig.ID)
	assertAppError(t, err, http.StatusNotFound, "Gig not found")

	_, err = env.gigs.GetOwnGig(ctx, env.venue.ID, 999)
	assertAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestUpdateGig_RerunsInvariants(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.gigs.CreateGig(ctx, env.venue.ID, validGigRequest())
	require.NoError(t, err)

	req := validGigRequest()
	req.Name = "Renamed Night"
	req.EndTime = "2030-06-15T19:00:00Z"
	_, err = env.gigs.UpdateGig(ctx, env.venue.ID, created.ID, req)
	assertAppError(t, err, http.StatusBadRequest, "End time must be after start time")

	req = validGigRequest()
	req.Name = "Renamed Night"
	updated, err := env.gigs.UpdateGig(ctx, env.venue.ID, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed Night", updated.Name)
}

func TestDeleteGig(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.gigs.CreateGig(ctx, env.venue.ID, validGigRequest())
	require.NoError(t, err)

	require.NoError(t, env.gigs.DeleteGig(ctx, env.venue.ID, created.ID))

	_, err = env.gigs.GetOwnGig(ctx, env.venue.ID, created.ID)
	assertAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestBrowseGigs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := env.gigs.CreateGig(ctx, env.venue.ID, validGigRequest())
		require.NoError(t, err)
	}

	resp, err := env.gigs.BrowseGigs(ctx, &dto.ListGigsQuery{
		PaginationQuery: dto.PaginationQuery{Page: 1, Limit: 2},
	})
	require.NoError(t, err)

	// env.gig создается в newTestEnv, всего 4
	assert.Equal(t, 4, resp.Pagination.Total)
	assert.Len(t, resp.Gigs, 2)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNextPage)
}
