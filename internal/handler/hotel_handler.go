package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"guestportal-service/internal/dashboard"
	"guestportal-service/internal/model"
	"guestportal-service/pkg/logger"
	"guestportal-service/prometheus"
)

// BrandingRequest is the full branding form. PrimaryColor must be a
// 6-digit hex color (case-insensitive, leading '#').
type BrandingRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	PrimaryColor   string  `json:"primary_color" validate:"required,len=7,hexcolor"`
	Logo           *string `json:"logo,omitempty" validate:"omitempty,url"`
	Address        string  `json:"address" validate:"required"`
	Phone          string  `json:"phone" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=500"`
	WelcomeMessage *string `json:"welcome_message,omitempty" validate:"omitempty,max=200"`
}

// Dashboard returns the full in-session state for the current operator.
func (h *Handler) Dashboard(c echo.Context) error {
	log := logger.FromContext(c)

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":       s.User(),
		"hotel":      s.Hotel(),
		"links":      s.Links(),
		"activities": s.Activities(),
	})
}

// UpdateHotel saves the branding form. The first save creates the hotel row,
// later saves update it; on a persistence failure the in-memory profile
// reverts and a transient error is reported.
func (h *Handler) UpdateHotel(c echo.Context) error {
	log := logger.FromContext(c)

	var req BrandingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Branding validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	patch := model.HotelPatch{
		Name:           &req.Name,
		PrimaryColor:   &req.PrimaryColor,
		Address:        &req.Address,
		Phone:          &req.Phone,
		Email:          &req.Email,
		Logo:           req.Logo,
		Description:    req.Description,
		WelcomeMessage: req.WelcomeMessage,
	}

	hotel, err := s.UpdateHotel(c.Request().Context(), patch)
	if err != nil {
		var pe *dashboard.PersistenceError
		if errors.As(err, &pe) {
			prometheus.RecordRollback("hotel")
		}
		return storeError(c, log, err)
	}

	prometheus.HotelSavesCounter.Inc()
	log.Info("Hotel branding saved", zap.String("hotel_id", hotel.ID.String()))
	return c.JSON(http.StatusOK, hotel)
}
