package models

import "gorm.io/datatypes"

type ArtistProfile struct {
	BaseModel
	UserID      uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Bio         *string        `gorm:"type:text" json:"bio"`
	Genres      datatypes.JSON `gorm:"type:jsonb" json:"genres"`
	PhoneNumber *string        `json:"phoneNumber"`
	City        *string        `json:"city"`

	// Relations
	Links []ArtistLink `gorm:"foreignKey:ArtistProfileID" json:"links,omitempty"`
}

type ArtistLink struct {
	BaseModel
	ArtistProfileID uint   `gorm:"not null;index" json:"artistProfileId"`
	Title           string `gorm:"not null" json:"title"`
	URL             string `gorm:"not null" json:"url"`
}
