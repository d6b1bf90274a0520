package domain

import (
	"time"
)

// Service is an entry of the barbershop price list.
type Service struct {
	ID              string        `json:"id"`
	Name            LocalizedText `json:"name"`
	Description     LocalizedText `json:"description"`
	Prices          Prices        `json:"prices"`
	DurationMinutes int           `json:"duration_minutes"`
	ImageURL        *string       `json:"image_url,omitempty"`
	IsPopular       bool          `json:"is_popular"`
	Active          bool          `json:"active"`
	SortOrder       int           `json:"sort_order"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateServiceDTO struct {
	Name            LocalizedText `json:"name" binding:"required,min=1,langs"`
	Description     LocalizedText `json:"description" binding:"omitempty,langs"`
	Prices          Prices        `json:"prices" binding:"required,min=1,currencies"`
	DurationMinutes int           `json:"duration_minutes" binding:"required,min=5,max=480"`
	ImageURL        *string       `json:"image_url" binding:"omitempty,max=500"`
	IsPopular       bool          `json:"is_popular"`
	Active          *bool         `json:"active"`
	SortOrder       int           `json:"sort_order"`
}

type UpdateServiceDTO struct {
	Name            LocalizedText `json:"name" binding:"omitempty,min=1,langs"`
	Description     LocalizedText `json:"description" binding:"omitempty,langs"`
	Prices          Prices        `json:"prices" binding:"omitempty,min=1,currencies"`
	DurationMinutes *int          `json:"duration_minutes" binding:"omitempty,min=5,max=480"`
	ImageURL        *string       `json:"image_url" binding:"omitempty,max=500"`
	IsPopular       *bool         `json:"is_popular"`
	Active          *bool         `json:"active"`
	SortOrder       *int          `json:"sort_order"`
}

type ServiceFilter struct {
	OnlyActive bool
}
