package domain

import (
	"time"
)

type StaffMember struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Position        LocalizedText `json:"position"`
	Description     LocalizedText `json:"description"`
	Specialties     LocalizedText `json:"specialties"`
	ImageURL        *string       `json:"image_url,omitempty"`
	YearsExperience int           `json:"years_experience"`
	SocialInstagram *string       `json:"social_instagram,omitempty"`
	SocialFacebook  *string       `json:"social_facebook,omitempty"`
	Active          bool          `json:"active"`
	SortOrder       int           `json:"sort_order"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateStaffMemberDTO struct {
	Name            string        `json:"name" binding:"required,min=2,max=100"`
	Position        LocalizedText `json:"position" binding:"required,min=1,langs"`
	Description     LocalizedText `json:"description" binding:"omitempty,langs"`
	Specialties     LocalizedText `json:"specialties" binding:"omitempty,langs"`
	ImageURL        *string       `json:"image_url" binding:"omitempty,max=500"`
	YearsExperience int           `json:"years_experience" binding:"min=0,max=80"`
	SocialInstagram *string       `json:"social_instagram" binding:"omitempty,max=200"`
	SocialFacebook  *string       `json:"social_facebook" binding:"omitempty,max=200"`
	Active          *bool         `json:"active"`
	SortOrder       int           `json:"sort_order"`
}

type UpdateStaffMemberDTO struct {
	Name            *string       `json:"name" binding:"omitempty,min=2,max=100"`
	Position        LocalizedText `json:"position" binding:"omitempty,min=1,langs"`
	Description     LocalizedText `json:"description" binding:"omitempty,langs"`
	Specialties     LocalizedText `json:"specialties" binding:"omitempty,langs"`
	ImageURL        *string       `json:"image_url" binding:"omitempty,max=500"`
	YearsExperience *int          `json:"years_experience" binding:"omitempty,min=0,max=80"`
	SocialInstagram *string       `json:"social_instagram" binding:"omitempty,max=200"`
	SocialFacebook  *string       `json:"social_facebook" binding:"omitempty,max=200"`
	Active          *bool         `json:"active"`
	SortOrder       *int          `json:"sort_order"`
}
