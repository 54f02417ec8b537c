package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"guestportal-service/internal/dashboard"
	"guestportal-service/internal/model"
	"guestportal-service/pkg/logger"
	"guestportal-service/prometheus"
)

// LinkRequest creates a new directory link. The URL field may hold literal
// content (a WiFi password, say) but must still parse as a URL.
type LinkRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	URL         string  `json:"url" validate:"required,url"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Category    string  `json:"category" validate:"required,oneof=hotel activities contact"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// LinkUpdateRequest is a field-level edit; absent fields are untouched.
type LinkUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Category    *string `json:"category,omitempty" validate:"omitempty,oneof=hotel activities contact"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ReorderRequest lists link IDs in their new arrangement: the whole
// collection, or just the subset visible in a category tab.
type ReorderRequest struct {
	LinkIDs []uuid.UUID `json:"link_ids" validate:"required,min=1"`
}

// ListLinks returns the session's link collection in display order.
func (h *Handler) ListLinks(c echo.Context) error {
	log := logger.FromContext(c)

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}
	return c.JSON(http.StatusOK, s.Links())
}

// CreateLink appends a link at the end of the directory.
func (h *Handler) CreateLink(c echo.Context) error {
	log := logger.FromContext(c)

	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Link validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	link, err := s.AddLink(c.Request().Context(), dashboard.LinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		Category:    model.LinkCategory(req.Category),
		IsActive:    isActive,
	})
	if err != nil {
		var pe *dashboard.PersistenceError
		if errors.As(err, &pe) {
			prometheus.RecordRollback("link")
		}
		return storeError(c, log, err)
	}

	prometheus.RecordLinkOperation("create")
	log.Info("Link created",
		zap.String("link_id", link.ID.String()),
		zap.String("title", link.Title),
		zap.Int("order", link.OrderIndex))
	return c.JSON(http.StatusCreated, link)
}

// UpdateLink applies a field-level edit to one link.
func (h *Handler) UpdateLink(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid link id"})
	}

	var req LinkUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Link validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	patch := model.LinkPatch{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    req.IsActive,
	}
	if req.Category != nil {
		category := model.LinkCategory(*req.Category)
		patch.Category = &category
	}

	link, err := s.UpdateLink(c.Request().Context(), id, patch)
	if err != nil {
		return storeError(c, log, err)
	}

	prometheus.RecordLinkOperation("update")
	log.Info("Link updated", zap.String("link_id", id.String()))
	return c.JSON(http.StatusOK, link)
}

// DeleteLink removes one link. Remaining links keep their order values; the
// sequence stays sparse until the next reorder.
func (h *Handler) DeleteLink(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid link id"})
	}

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	if err := s.DeleteLink(c.Request().Context(), id); err != nil {
		var pe *dashboard.PersistenceError
		if errors.As(err, &pe) {
			prometheus.RecordRollback("link")
		}
		return storeError(c, log, err)
	}

	prometheus.RecordLinkOperation("delete")
	log.Info("Link deleted", zap.String("link_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "link deleted"})
}

// ReorderLinks persists a drag-and-drop arrangement.
func (h *Handler) ReorderLinks(c echo.Context) error {
	log := logger.FromContext(c)

	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Reorder validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}

	links, err := s.ReorderLinks(c.Request().Context(), req.LinkIDs)
	if err != nil {
		var pe *dashboard.PersistenceError
		if errors.As(err, &pe) {
			prometheus.ReorderPartialFailures.Inc()
		}
		return storeError(c, log, err)
	}

	prometheus.RecordLinkOperation("reorder")
	log.Info("Links reordered", zap.Int("count", len(req.LinkIDs)))
	return c.JSON(http.StatusOK, links)
}
