package domain

import (
	"time"
)

type Review struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ServiceID    *string   `json:"service_id,omitempty"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateReviewDTO struct {
	CustomerName string  `json:"customer_name" binding:"required,min=2,max=100"`
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	Comment      string  `json:"comment" binding:"required,min=3,max=2000"`
	ServiceID    *string `json:"service_id" binding:"omitempty,uuid"`
}

type UpdateReviewDTO struct {
	CustomerName *string `json:"customer_name" binding:"omitempty,min=2,max=100"`
	Rating       *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment      *string `json:"comment" binding:"omitempty,min=3,max=2000"`
	ServiceID    *string `json:"service_id" binding:"omitempty,uuid"`
	Approved     *bool   `json:"approved"`
}

type ReviewFilter struct {
	Approved *bool
}
