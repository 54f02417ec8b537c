package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPrimaryColor is applied to hotels created without explicit branding.
const DefaultPrimaryColor = "#3B82F6"

// DefaultHotelName is used when a hotel row is created before the operator
// has filled in the branding form.
const DefaultHotelName = "My Hotel"

// Hotel represents one tenant's guest portal profile. At most one row exists
// per user; creation happens through upsert on the first branding save.
type Hotel struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Name           string    `json:"name" gorm:"type:varchar(100);not null"`
	PrimaryColor   string    `json:"primary_color" gorm:"type:varchar(7);default:'#3B82F6'"`
	Logo           *string   `json:"logo,omitempty" gorm:"type:varchar(2048)"`
	Address        string    `json:"address" gorm:"type:varchar(255)"`
	Phone          string    `json:"phone" gorm:"type:varchar(50)"`
	Email          string    `json:"email" gorm:"type:varchar(255)"`
	Description    string    `json:"description" gorm:"type:text"`
	WelcomeMessage string    `json:"welcome_message" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HotelPatch carries a partial branding update. Nil fields are left untouched
// both in memory and in the durable row.
type HotelPatch struct {
	Name           *string
	PrimaryColor   *string
	Logo           *string
	Address        *string
	Phone          *string
	Email          *string
	Description    *string
	WelcomeMessage *string
}

// Apply merges the non-nil fields of the patch into the hotel.
func (p HotelPatch) Apply(h *Hotel) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.PrimaryColor != nil {
		h.PrimaryColor = *p.PrimaryColor
	}
	if p.Logo != nil {
		h.Logo = p.Logo
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.Phone != nil {
		h.Phone = *p.Phone
	}
	if p.Email != nil {
		h.Email = *p.Email
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.WelcomeMessage != nil {
		h.WelcomeMessage = *p.WelcomeMessage
	}
}
