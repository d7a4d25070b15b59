package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gigbook_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.ArtistProfile{},
		&models.ArtistLink{},
	))
	return db
}

func makeGig(ownerID uint, name string) *models.Gig {
	date := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	rate := 100.0
	return &models.Gig{
		UserID:     ownerID,
		Name:       name,
		Date:       date,
		Venue:      "The Blue Note",
		HourlyRate: &rate,
		StartTime:  date.Add(20 * time.Hour),
		EndTime:    date.Add(23 * time.Hour),
	}
}

func TestGigRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGigRepository(db)
	ctx := context.Background()

	gig := makeGig(1, "Jazz Night")
	require.NoError(t, repo.Create(ctx, gig))
	require.NotZero(t, gig.ID)

	found, err := repo.FindByID(ctx, gig.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jazz Night", found.Name)

	missing, err := repo.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGigRepository_FindByIDAndOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGigRepository(db)
	ctx := context.Background()

	gig := makeGig(1, "Jazz Night")
	require.NoError(t, repo.Create(ctx, gig))

	owned, err := repo.FindByIDAndOwner(ctx, gig.ID, 1)
	require.NoError(t, err)
	assert.NotNil(t, owned)

	// чужой гиг неотличим от несуществующего
	foreign, err := repo.FindByIDAndOwner(ctx, gig.ID, 2)
	require.NoError(t, err)
	assert.Nil(t, foreign)
}

func TestGigRepository_ListByOwner_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGigRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeGig(1, "Jazz Night")))
	require.NoError(t, repo.Create(ctx, makeGig(1, "Rock Festival")))
	require.NoError(t, repo.Create(ctx, makeGig(2, "Jazz Brunch")))

	// поиск нечувствителен к регистру и не выходит за владельца
	gigs, total, err := repo.ListByOwner(ctx, 1, "jAzZ", 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, gigs, 1)
	assert.Equal(t, "Jazz Night", gigs[0].Name)
}

func TestGigRepository_ListAll_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGigRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, makeGig(1, fmt.Sprintf("Gig %d", i))))
	}

	gigs, total, err := repo.ListAll(ctx, "", 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, gigs, 2)

	rest, total, err := repo.ListAll(ctx, "", 2, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, rest, 1)
}

func TestGigRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGigRepository(db)
	ctx := context.Background()

	gig := makeGig(1, "Jazz Night")
	require.NoError(t, repo.Create(ctx, gig))

	gig.Name = "Jazz Night Deluxe"
	require.NoError(t, repo.Update(ctx, gig))

	updated, err := repo.FindByID(ctx, gig.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night Deluxe", updated.Name)

	require.NoError(t, repo.Delete(ctx, gig))
	gone, err := repo.FindByID(ctx, gig.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
