package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"guestportal-service/internal/dashboard"
	mid "guestportal-service/internal/middleware"
	"guestportal-service/internal/model"
	"guestportal-service/internal/session"
)

// UserAccounts is the durable account surface the handlers need.
type UserAccounts interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

// PortalHotels serves the public feed's hotel lookup.
type PortalHotels interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error)
}

// PortalLinks serves the public feed's guest-facing link query.
type PortalLinks interface {
	ListActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]model.Link, error)
}

// Handler carries the wired dependencies for every route. Constructed once
// in main and passed to the router; no package-level state.
type Handler struct {
	sessions *session.Registry
	users    UserAccounts
	hotels   PortalHotels
	links    PortalLinks
}

func New(sessions *session.Registry, users UserAccounts, hotels PortalHotels, links PortalLinks) *Handler {
	return &Handler{sessions: sessions, users: users, hotels: hotels, links: links}
}

// currentStore resolves the caller's dashboard store from the auth context.
func (h *Handler) currentStore(c echo.Context) (*dashboard.Store, error) {
	userID, ok := mid.GetUserIDFromContext(c)
	if !ok {
		return nil, dashboard.ErrAuthRequired
	}
	return h.sessions.ForUser(c.Request().Context(), userID)
}

// storeError converts an Entity Store error into a JSON outcome. Every
// mutation failure ends here; nothing propagates as an uncaught fault.
func storeError(c echo.Context, log *zap.Logger, err error) error {
	var pe *dashboard.PersistenceError
	switch {
	case errors.Is(err, dashboard.ErrAuthRequired):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	case errors.Is(err, dashboard.ErrHotelRequired):
		return c.JSON(http.StatusConflict, echo.Map{"error": "please create a hotel first"})
	case errors.Is(err, dashboard.ErrLinkNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "link not found"})
	case errors.Is(err, dashboard.ErrActivityNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "activity not found"})
	case errors.Is(err, dashboard.ErrInvalidSequence):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reorder sequence"})
	case errors.As(err, &pe):
		log.Error("durable store call failed", zap.String("op", pe.Op), zap.Error(pe.Err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save changes"})
	default:
		log.Error("unexpected error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
