package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"gigbook_backend/internal/models"
	"gigbook_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := submitTestProposal(t, env)

	// senderType выводится из стороны, а не из запроса
	fromArtist, err := env.messages.PostMessage(ctx, env.artist.ID, proposal.ID, &dto.PostMessageRequest{
		Message: "  Looking forward to the gig!  ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleArtist, fromArtist.SenderType)
	assert.Equal(t, "Looking forward to the gig!", fromArtist.Message)

	fromVenue, err := env.messages.PostMessage(ctx, env.venue.ID, proposal.ID, &dto.PostMessageRequest{
		Message: "See you at 8pm",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleVenue, fromVenue.SenderType)
	assert.Greater(t, fromVenue.ID, fromArtist.ID)
}

func TestPostMessage_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := submitTestProposal(t, env)

	_, err := env.messages.PostMessage(ctx, env.artist.ID, proposal.ID, &dto.PostMessageRequest{
		Message: "   ",
	})
	assertAppError(t, err, http.StatusBadRequest, "Validation Error")

	_, err = env.messages.PostMessage(ctx, env.artist.ID, proposal.ID, &dto.PostMessageRequest{
		Message: strings.Repeat("a", 1001),
	})
	assertAppError(t, err, http.StatusBadRequest, "Validation Error")

	_, err = env.messages.PostMessage(ctx, env.artist.ID, proposal.ID, &dto.PostMessageRequest{
		Message: strings.Repeat("音", 1001),
	})
	assertAppError(t, err, http.StatusBadRequest, "Validation Error")
}

func TestPostMessage_MultibyteLengthInRunes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := submitTestProposal(t, env)

	// лимит считается в символах: 1000 трехбайтных рун проходят
	for _, length := range []int{600, 1000} {
		text := strings.Repeat("音", length)
		message, err := env.messages.PostMessage(ctx, env.artist.ID, proposal.ID, &dto.PostMessageRequest{
			Message: text,
		})
		require.NoError(t, err, "message of %d runes must be accepted", length)
		assert.Equal(t, text, message.Message)
	}
}

func TestPostMessage_Membership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := submitTestProposal(t, env)

	outsider := &models.User{Name: "Eve", Email: "eve@example.com", PasswordHash: "x", Role: models.UserRoleArtist}
	require.NoError(t, env.userRepo.Create(ctx, outsider))

	_, err := env.messages.PostMessage(ctx, outsider.ID, proposal.ID, &dto.PostMessageRequest{Message: "hi"})
	assertAppError(t, err, http.StatusForbidden, "You don't have permission to send messages")

	_, err = env.messages.ListMessages(ctx, outsider.ID, proposal.ID, &dto.PaginationQuery{})
	assertAppError(t, err, http.StatusForbidden, "You don't have permission to view these messages")
}

func TestPostMessage_ProposalNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.messages.PostMessage(context.Background(), env.artist.ID, 999, &dto.PostMessageRequest{Message: "hi"})
	assertAppError(t, err, http.StatusNotFound, "Proposal not found")
}

func TestListMessages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := submitTestProposal(t, env)

	for _, text := range []string{"one", "two", "three"} {
		_, err := env.messages.PostMessage(ctx, env.artist.ID, proposal.ID, &dto.PostMessageRequest{Message: text})
		require.NoError(t, err)
	}

	resp, err := env.messages.ListMessages(ctx, env.venue.ID, proposal.ID, &dto.PaginationQuery{})
	require.NoError(t, err)

	// свежие первыми
	require.Len(t, resp.Messages, 3)
	assert.Equal(t, "three", resp.Messages[0].Message)
	assert.Equal(t, "one", resp.Messages[2].Message)

	assert.Equal(t, 3, resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.Limit)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
	assert.False(t, resp.Pagination.HasNextPage)
	assert.False(t, resp.Pagination.HasPrevPage)
}

func TestListMessages_Pagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := submitTestProposal(t, env)
	for i := 0; i < 5; i++ {
		_, err := env.messages.PostMessage(ctx, env.artist.ID, proposal.ID, &dto.PostMessageRequest{Message: "msg"})
		require.NoError(t, err)
	}

	resp, err := env.messages.ListMessages(ctx, env.artist.ID, proposal.ID, &dto.PaginationQuery{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, resp.Messages, 2)
	assert.Equal(t, 5, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNextPage)
	assert.True(t, resp.Pagination.HasPrevPage)
}
