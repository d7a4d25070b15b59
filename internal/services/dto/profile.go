package dto

// UpdateProfileRequest - upsert профиля артиста
type UpdateProfileRequest struct {
	Bio         *string  `json:"bio" validate:"omitempty,max=2000"`
	Genres      []string `json:"genres" validate:"omitempty,max=20,dive,min=1,max=50"`
	PhoneNumber *string  `json:"phoneNumber" validate:"omitempty,max=30"`
	City        *string  `json:"city" validate:"omitempty,max=100"`
}

type AddLinkRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	URL   string `json:"url" validate:"required,url"`
}
