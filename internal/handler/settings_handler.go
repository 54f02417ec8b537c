package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	mid "guestportal-service/internal/middleware"
	"guestportal-service/internal/model"
	"guestportal-service/pkg/logger"
	"guestportal-service/prometheus"
)

// ProfileRequest edits the operator's name and contact email.
type ProfileRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// PasswordRequest changes the operator's credentials. The confirmation must
// repeat the new password exactly.
type PasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// UpdateProfile saves the profile form to the durable account row and merges
// the same edit into the session store so the dashboard reflects it at once.
func (h *Handler) UpdateProfile(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Profile validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	userID, ok := mid.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	ctx := c.Request().Context()
	if other, err := h.users.GetByEmail(ctx, req.Email); err != nil {
		log.Error("Failed to check email uniqueness", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	} else if other != nil && other.ID != userID {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	if err := h.users.UpdateProfile(ctx, userID, req.Name, req.Email); err != nil {
		log.Error("Failed to update profile", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save changes"})
	}

	s, err := h.currentStore(c)
	if err != nil {
		return storeError(c, log, err)
	}
	user := s.UpdateUser(model.UserPatch{Name: &req.Name, Email: &req.Email})

	log.Info("Profile updated", zap.String("user_id", userID.String()))
	return c.JSON(http.StatusOK, user)
}

// UpdatePassword verifies the current password and stores a new hash.
func (h *Handler) UpdatePassword(c echo.Context) error {
	log := logger.FromContext(c)

	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Password validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	userID, ok := mid.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	ctx := c.Request().Context()
	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		log.Error("Failed to look up user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	if user == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		prometheus.RecordAuthError("invalid_current_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current password is incorrect"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	if err := h.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		log.Error("Failed to update password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save changes"})
	}

	log.Info("Password changed", zap.String("user_id", userID.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
}
