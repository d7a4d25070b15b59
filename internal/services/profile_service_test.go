package services

import (
	"context"
	"net/http"
	"testing"

	"gigbook_backend/internal/repositories"
	"gigbook_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileEnv(t *testing.T) (*testEnv, ProfileService) {
	t.Helper()
	env := newTestEnv(t)
	return env, NewProfileService(repositories.NewProfileRepository(env.db))
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile_Upsert(t *testing.T) {
	env, profiles := newProfileEnv(t)
	ctx := context.Background()

	// профиля еще нет
	_, err := profiles.GetProfile(ctx, env.artist.ID)
	assertAppError(t, err, http.StatusNotFound, "Profile not found")

	created, err := profiles.UpdateProfile(ctx, env.artist.ID, &dto.UpdateProfileRequest{
		Bio:    strPtr("Jazz vocalist from Almaty"),
		Genres: []string{"jazz", "soul"},
		City:   strPtr("Almaty"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, env.artist.ID, created.UserID)
	assert.JSONEq(t, `["jazz","soul"]`, string(created.Genres))

	updated, err := profiles.UpdateProfile(ctx, env.artist.ID, &dto.UpdateProfileRequest{
		Bio:    strPtr("Jazz and soul vocalist"),
		Genres: []string{"jazz"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jazz and soul vocalist", *updated.Bio)
	assert.JSONEq(t, `["jazz"]`, string(updated.Genres))

	fetched, err := profiles.GetProfile(ctx, env.artist.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Jazz and soul vocalist", *fetched.Bio)
}

func TestProfileLinks(t *testing.T) {
	env, profiles := newProfileEnv(t)
	ctx := context.Background()

	// ссылки требуют существующего профиля
	_, err := profiles.AddLink(ctx, env.artist.ID, &dto.AddLinkRequest{
		Title: "SoundCloud",
		URL:   "https://soundcloud.com/nina",
	})
	assertAppError(t, err, http.StatusNotFound, "Profile not found")

	_, err = profiles.UpdateProfile(ctx, env.artist.ID, &dto.UpdateProfileRequest{})
	require.NoError(t, err)

	link, err := profiles.AddLink(ctx, env.artist.ID, &dto.AddLinkRequest{
		Title: "SoundCloud",
		URL:   "https://soundcloud.com/nina",
	})
	require.NoError(t, err)
	assert.NotZero(t, link.ID)

	fetched, err := profiles.GetProfile(ctx, env.artist.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Links, 1)
	assert.Equal(t, "SoundCloud", fetched.Links[0].Title)

	require.NoError(t, profiles.DeleteLink(ctx, env.artist.ID, link.ID))

	fetched, err = profiles.GetProfile(ctx, env.artist.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Links)
}

func TestDeleteLink_NotFound(t *testing.T) {
	env, profiles := newProfileEnv(t)
	ctx := context.Background()

	_, err := profiles.UpdateProfile(ctx, env.artist.ID, &dto.UpdateProfileRequest{})
	require.NoError(t, err)

	err = profiles.DeleteLink(ctx, env.artist.ID, 999)
	assertAppError(t, err, http.StatusNotFound, "Link not found")
}

func TestDeleteLink_ForeignProfileMasked(t *testing.T) {
	env, profiles := newProfileEnv(t)
	ctx := context.Background()

	_, err := profiles.UpdateProfile(ctx, env.artist.ID, &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	link, err := profiles.AddLink(ctx, env.artist.ID, &dto.AddLinkRequest{
		Title: "Site",
		URL:   "https://nina.example.com",
	})
	require.NoError(t, err)

	// другой пользователь не может удалить чужую ссылку
	_, err = profiles.UpdateProfile(ctx, env.venue.ID, &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	err = profiles.DeleteLink(ctx, env.venue.ID, link.ID)
	assertAppError(t, err, http.StatusNotFound, "Link not found")
}
