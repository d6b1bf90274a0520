package domain

import (
	"time"
)

// ServiceHours controls which booking slots exist on a weekday.
// DayOfWeek follows time.Weekday: 0 is Sunday.
type ServiceHours struct {
	ID                  string        `json:"id"`
	DayOfWeek           int           `json:"day_of_week"`
	DayName             LocalizedText `json:"day_name"`
	IsAvailable         bool          `json:"is_available"`
	StartTime           *string       `json:"start_time"`
	EndTime             *string       `json:"end_time"`
	BreakStartTime      *string       `json:"break_start_time"`
	BreakEndTime        *string       `json:"break_end_time"`
	SlotDurationMinutes int           `json:"slot_duration_minutes"`
	AvailableSlots      []string      `json:"available_slots"`
	Active              bool          `json:"active"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type UpdateServiceHoursDTO struct {
	DayName             LocalizedText `json:"day_name" binding:"omitempty,langs"`
	IsAvailable         *bool         `json:"is_available"`
	StartTime           *string       `json:"start_time" binding:"omitempty,clock"`
	EndTime             *string       `json:"end_time" binding:"omitempty,clock"`
	BreakStartTime      *string       `json:"break_start_time" binding:"omitempty,clock"`
	BreakEndTime        *string       `json:"break_end_time" binding:"omitempty,clock"`
	SlotDurationMinutes *int          `json:"slot_duration_minutes" binding:"omitempty,min=5,max=480"`
	AvailableSlots      *[]string     `json:"available_slots" binding:"omitempty,dive,clock"`
	ClearBreak          bool          `json:"clear_break"`
	Active              *bool         `json:"active"`
}

// WorkingHours are the opening hours displayed on the site.
type WorkingHours struct {
	ID                  string        `json:"id"`
	DayOfWeek           int           `json:"day_of_week"`
	DayName             LocalizedText `json:"day_name"`
	IsOpen              bool          `json:"is_open"`
	OpenTime            *string       `json:"open_time"`
	CloseTime           *string       `json:"close_time"`
	BreakStartTime      *string       `json:"break_start_time"`
	BreakEndTime        *string       `json:"break_end_time"`
	SlotDurationMinutes int           `json:"slot_duration_minutes"`
	Active              bool          `json:"active"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type UpdateWorkingHoursDTO struct {
	DayName             LocalizedText `json:"day_name" binding:"omitempty,langs"`
	IsOpen              *bool         `json:"is_open"`
	OpenTime            *string       `json:"open_time" binding:"omitempty,clock"`
	CloseTime           *string       `json:"close_time" binding:"omitempty,clock"`
	BreakStartTime      *string       `json:"break_start_time" binding:"omitempty,clock"`
	BreakEndTime        *string       `json:"break_end_time" binding:"omitempty,clock"`
	SlotDurationMinutes *int          `json:"slot_duration_minutes" binding:"omitempty,min=5,max=480"`
	ClearBreak          bool          `json:"clear_break"`
	Active              *bool         `json:"active"`
}

// Slot is a bookable start time on a given date.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type DayAvailability struct {
	Date      string `json:"date"`
	DayOfWeek int    `json:"day_of_week"`
	Slots     []Slot `json:"slots"`
}
