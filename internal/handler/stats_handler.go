package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"guestportal-service/pkg/logger"
)

// Stats summarizes the session state for the dashboard header cards.
func (h *Handler) Stats(c echo.Context) error {
	log := logger.FromContext(c)

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	links := s.Links()
	activeLinks := 0
	for _, l := range links {
		if l.IsActive {
			activeLinks++
		}
	}

	activities := s.Activities()
	activeActivities := 0
	for _, a := range activities {
		if a.IsActive {
			activeActivities++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_links":       len(links),
		"active_links":      activeLinks,
		"total_activities":  len(activities),
		"active_activities": activeActivities,
		"has_hotel":         s.Hotel() != nil,
	})
}
