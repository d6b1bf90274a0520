package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

const DateLayout = "2006-01-02"

type Appointment struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerEmail   *string           `json:"customer_email,omitempty"`
	ServiceID       *string           `json:"service_id,omitempty"`
	ServiceName     LocalizedText     `json:"service_name,omitempty"`
	AppointmentDate string            `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	Notes           *string           `json:"notes,omitempty"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type CreateAppointmentDTO struct {
	CustomerName    string  `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerPhone   string  `json:"customer_phone" binding:"required,phone"`
	CustomerEmail   *string `json:"customer_email" binding:"omitempty,email"`
	ServiceID       string  `json:"service_id" binding:"required,uuid"`
	AppointmentDate string  `json:"appointment_date" binding:"required,isodate"`
	AppointmentTime string  `json:"appointment_time" binding:"required,clock"`
	Notes           *string `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateAppointmentDTO struct {
	CustomerName    *string            `json:"customer_name" binding:"omitempty,min=2,max=100"`
	CustomerPhone   *string            `json:"customer_phone" binding:"omitempty,phone"`
	CustomerEmail   *string            `json:"customer_email" binding:"omitempty,email"`
	ServiceID       *string            `json:"service_id" binding:"omitempty,uuid"`
	AppointmentDate *string            `json:"appointment_date" binding:"omitempty,isodate"`
	AppointmentTime *string            `json:"appointment_time" binding:"omitempty,clock"`
	Notes           *string            `json:"notes" binding:"omitempty,max=1000"`
	Status          *AppointmentStatus `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
}

type UpdateAppointmentStatusDTO struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type AppointmentFilter struct {
	Status    *AppointmentStatus `json:"status"`
	StartDate *time.Time         `json:"start_date"`
	EndDate   *time.Time         `json:"end_date"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// AppointmentEvent is published to connected admin panels.
type AppointmentEvent struct {
	Type        string       `json:"type"`
	Appointment *Appointment `json:"appointment,omitempty"`
	ID          string       `json:"id,omitempty"`
	OccurredAt  time.Time    `json:"occurred_at"`
}

const (
	EventAppointmentCreated = "appointment.created"
	EventAppointmentUpdated = "appointment.updated"
	EventAppointmentDeleted = "appointment.deleted"
)
