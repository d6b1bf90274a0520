package domain

import (
	"time"
)

const DefaultGalleryCategory = "general"

type GalleryImage struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	ImageURL    string        `json:"image_url"`
	Category    string        `json:"category"`
	Active      bool          `json:"active"`
	SortOrder   int           `json:"sort_order"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateGalleryImageDTO struct {
	Title       LocalizedText `json:"title" binding:"required,min=1,langs"`
	Description LocalizedText `json:"description" binding:"omitempty,langs"`
	ImageURL    string        `json:"image_url" binding:"required,max=500"`
	Category    string        `json:"category" binding:"omitempty,max=50"`
	Active      *bool         `json:"active"`
	SortOrder   int           `json:"sort_order"`
}

type UpdateGalleryImageDTO struct {
	Title       LocalizedText `json:"title" binding:"omitempty,min=1,langs"`
	Description LocalizedText `json:"description" binding:"omitempty,langs"`
	ImageURL    *string       `json:"image_url" binding:"omitempty,max=500"`
	Category    *string       `json:"category" binding:"omitempty,max=50"`
	Active      *bool         `json:"active"`
	SortOrder   *int          `json:"sort_order"`
}
