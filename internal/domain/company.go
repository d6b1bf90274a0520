package domain

import (
	"time"
)

// CompanyInfo is one section of the "about us" content, keyed by Section.
type CompanyInfo struct {
	ID              string         `json:"id"`
	Section         string         `json:"section"`
	Title           LocalizedText  `json:"title"`
	Content         LocalizedText  `json:"content"`
	Content2        LocalizedText  `json:"content2"`
	BarberTitle     LocalizedText  `json:"barber_title"`
	ImageURL        *string        `json:"image_url,omitempty"`
	BarberName      *string        `json:"barber_name,omitempty"`
	YearsExperience *int           `json:"years_experience,omitempty"`
	TotalClients    *int           `json:"total_clients,omitempty"`
	Satisfaction    *int           `json:"satisfaction,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type UpsertCompanyInfoDTO struct {
	Section         string         `json:"section" binding:"required,slug,max=50"`
	Title           LocalizedText  `json:"title" binding:"omitempty,langs"`
	Content         LocalizedText  `json:"content" binding:"omitempty,langs"`
	Content2        LocalizedText  `json:"content2" binding:"omitempty,langs"`
	BarberTitle     LocalizedText  `json:"barber_title" binding:"omitempty,langs"`
	ImageURL        *string        `json:"image_url" binding:"omitempty,max=500"`
	BarberName      *string        `json:"barber_name" binding:"omitempty,max=100"`
	YearsExperience *int           `json:"years_experience" binding:"omitempty,min=0"`
	TotalClients    *int           `json:"total_clients" binding:"omitempty,min=0"`
	Satisfaction    *int           `json:"satisfaction" binding:"omitempty,min=0,max=100"`
	Metadata        map[string]any `json:"metadata"`
}
