package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"userType"`

	// Relations
	ArtistProfile *ArtistProfile `gorm:"foreignKey:UserID" json:"artistProfile,omitempty"`
}
