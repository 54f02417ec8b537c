package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkCategory groups links into the guest portal's tabs.
type LinkCategory string

const (
	LinkCategoryHotel      LinkCategory = "hotel"
	LinkCategoryActivities LinkCategory = "activities"
	LinkCategoryContact    LinkCategory = "contact"
)

// Valid reports whether the category is one of the closed enumeration.
func (c LinkCategory) Valid() bool {
	switch c {
	case LinkCategoryHotel, LinkCategoryActivities, LinkCategoryContact:
		return true
	}
	return false
}

// Link is one entry of a hotel's guest-facing link directory. OrderIndex is a
// 1-based integer defining display sequence; within one hotel's collection the
// values form a contiguous ascending run after any successful reorder. The URL
// field may also hold literal content such as a WiFi password, per product
// convention.
type Link struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	HotelID     uuid.UUID    `json:"hotel_id" gorm:"type:uuid;index;not null"`
	Title       string       `json:"title" gorm:"type:varchar(100);not null"`
	URL         string       `json:"url" gorm:"type:varchar(2048);not null"`
	Description *string      `json:"description,omitempty" gorm:"type:varchar(200)"`
	Icon        *string      `json:"icon,omitempty" gorm:"type:varchar(50)"`
	Category    LinkCategory `json:"category" gorm:"type:varchar(20);not null"`
	OrderIndex  int          `json:"order" gorm:"column:order_index;not null"`
	IsActive    bool         `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time    `json:"created_at"`
}

// LinkPatch carries a field-level link edit. Nil fields are not overwritten.
type LinkPatch struct {
	Title       *string
	URL         *string
	Description *string
	Icon        *string
	Category    *LinkCategory
	IsActive    *bool
}

// Apply merges the non-nil fields of the patch into the link.
func (p LinkPatch) Apply(l *Link) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.URL != nil {
		l.URL = *p.URL
	}
	if p.Description != nil {
		l.Description = p.Description
	}
	if p.Icon != nil {
		l.Icon = p.Icon
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
}
