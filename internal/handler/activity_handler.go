package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"guestportal-service/internal/dashboard"
	"guestportal-service/internal/model"
	"guestportal-service/pkg/logger"
	"guestportal-service/prometheus"
)

// ActivityRequest creates a weather-conditioned recommendation. Priority
// defaults to 5 when omitted.
type ActivityRequest struct {
	Title            string `json:"title" validate:"required,max=100"`
	Description      string `json:"description" validate:"required,max=500"`
	ImageURL         string `json:"image_url" validate:"required,url"`
	WeatherCondition string `json:"weather_condition" validate:"required,oneof=sunny cloudy rainy snowy"`
	Priority         int    `json:"priority" validate:"omitempty,gte=1,lte=10"`
	IsActive         *bool  `json:"is_active,omitempty"`
}

// ActivityUpdateRequest is a field-level edit; absent fields are untouched.
type ActivityUpdateRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL         *string `json:"image_url,omitempty" validate:"omitempty,url"`
	WeatherCondition *string `json:"weather_condition,omitempty" validate:"omitempty,oneof=sunny cloudy rainy snowy"`
	Priority         *int    `json:"priority,omitempty" validate:"omitempty,gte=1,lte=10"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

// ListActivities returns the session's activities sorted by priority.
func (h *Handler) ListActivities(c echo.Context) error {
	log := logger.FromContext(c)

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}
	return c.JSON(http.StatusOK, s.Activities())
}

// CreateActivity appends an activity to the session collection.
func (h *Handler) CreateActivity(c echo.Context) error {
	log := logger.FromContext(c)

	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Activity validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	priority := req.Priority
	if priority == 0 {
		priority = 5
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	activity := s.AddActivity(dashboard.ActivityInput{
		Title:            req.Title,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		WeatherCondition: model.WeatherCondition(req.WeatherCondition),
		Priority:         priority,
		IsActive:         isActive,
	})

	prometheus.RecordActivityOperation("create")
	log.Info("Activity created",
		zap.String("activity_id", activity.ID),
		zap.String("weather", string(activity.WeatherCondition)))
	return c.JSON(http.StatusCreated, activity)
}

// UpdateActivity applies a field-level edit to one activity.
func (h *Handler) UpdateActivity(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ActivityUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Activity validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	patch := model.ActivityPatch{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Priority:    req.Priority,
		IsActive:    req.IsActive,
	}
	if req.WeatherCondition != nil {
		weather := model.WeatherCondition(*req.WeatherCondition)
		patch.WeatherCondition = &weather
	}

	activity, err := s.UpdateActivity(id, patch)
	if err != nil {
		return storeError(c, log, err)
	}

	prometheus.RecordActivityOperation("update")
	log.Info("Activity updated", zap.String("activity_id", id))
	return c.JSON(http.StatusOK, activity)
}

// DeleteActivity removes one activity from the session collection.
func (h *Handler) DeleteActivity(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	if err := s.DeleteActivity(id); err != nil {
		return storeError(c, log, err)
	}

	prometheus.RecordActivityOperation("delete")
	log.Info("Activity deleted", zap.String("activity_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "activity deleted"})
}
