package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"guestportal-service/pkg/logger"
)

// Portal serves the guest-facing feed for one hotel: branding plus active
// links in display order. No authentication; guests reach this from a QR code.
func (h *Handler) Portal(c echo.Context) error {
	log := logger.FromContext(c)

	hotelID, err := uuid.Parse(c.Param("hotelID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}

	ctx := c.Request().Context()
	hotel, err := h.hotels.GetByID(ctx, hotelID)
	if err != nil {
		log.Error("Failed to load hotel", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	if hotel == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
	}

	links, err := h.links.ListActiveByHotel(ctx, hotelID)
	if err != nil {
		log.Error("Failed to load links", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"hotel": hotel,
		"links": links,
	})
}
