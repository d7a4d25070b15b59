package database

import (
	"fmt"

	"gigbook_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect открывает пул соединений с postgres
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate накатывает схему для долговечных сущностей.
// Предложения, сообщения и рейтинги живут в памяти процесса
// и в схеме не участвуют.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.ArtistProfile{},
		&models.ArtistLink{},
	)
}
