package model

import "time"

// WeatherCondition selects which activities the guest portal recommends for
// the current weather.
type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherSnowy  WeatherCondition = "snowy"
)

// Valid reports whether the condition is one of the closed enumeration.
func (w WeatherCondition) Valid() bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherRainy, WeatherSnowy:
		return true
	}
	return false
}

// Activity is a weather-conditioned recommendation. Activities are
// session-local in the current product stage: identities come from an
// in-process generator and rows are never persisted. Priority is a sort key
// in [1,10] (lower shows first); ties break by insertion order.
type Activity struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	ImageURL         string           `json:"image_url"`
	WeatherCondition WeatherCondition `json:"weather_condition"`
	Priority         int              `json:"priority"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ActivityPatch carries a field-level activity edit.
type ActivityPatch struct {
	Title            *string
	Description      *string
	ImageURL         *string
	WeatherCondition *WeatherCondition
	Priority         *int
	IsActive         *bool
}

// Apply merges the non-nil fields of the patch into the activity.
func (p ActivityPatch) Apply(a *Activity) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.WeatherCondition != nil {
		a.WeatherCondition = *p.WeatherCondition
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
}
