package domain

import (
	"time"
)

// Well-known site configuration keys.
const (
	ConfigSiteEmail = "site_email"
	ConfigSitePhone = "site_phone"
	ConfigWhatsApp  = "whatsapp_number"
)

type SiteConfig struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpsertSiteConfigDTO struct {
	Key         string  `json:"key" binding:"required,max=100"`
	Value       string  `json:"value"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}
