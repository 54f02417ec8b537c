package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"guestportal-service/internal/model"
	"guestportal-service/prometheus"
)

// HotelRepository persists hotel rows. It satisfies dashboard.HotelStore.
type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// GetByUserID returns the user's hotel, or (nil, nil) when none exists yet.
func (r *HotelRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hotel, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var hotel model.Hotel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&hotel)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &hotel, nil
}

// GetByID returns a hotel by primary key, or (nil, nil) when absent. Used by
// the public portal feed.
func (r *HotelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var hotel model.Hotel
	result := r.db.WithContext(ctx).First(&hotel, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &hotel, nil
}

// Insert creates the hotel row, assigning its identity and timestamps.
func (r *HotelRepository) Insert(ctx context.Context, hotel *model.Hotel) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	hotel.ID = uuid.New()
	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now
	return r.db.WithContext(ctx).Create(hotel).Error
}

// Update writes only the fields present in the patch, plus updated_at.
func (r *HotelRepository) Update(ctx context.Context, id uuid.UUID, patch model.HotelPatch) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.PrimaryColor != nil {
		updates["primary_color"] = *patch.PrimaryColor
	}
	if patch.Logo != nil {
		updates["logo"] = *patch.Logo
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.WelcomeMessage != nil {
		updates["welcome_message"] = *patch.WelcomeMessage
	}

	result := r.db.WithContext(ctx).Model(&model.Hotel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
