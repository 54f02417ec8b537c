package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"guestportal-service/internal/model"
	"guestportal-service/prometheus"
)

// LinkRepository persists link rows. It satisfies dashboard.LinkStore and
// additionally serves the ordered queries the dashboard and the public
// guest portal read from.
type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Insert creates the link row and returns the durable-assigned identity.
func (r *LinkRepository) Insert(ctx context.Context, link *model.Link) (uuid.UUID, error) {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	link.ID = uuid.New()
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return uuid.Nil, err
	}
	return link.ID, nil
}

// Update writes only the fields present in the patch.
func (r *LinkRepository) Update(ctx context.Context, id uuid.UUID, patch model.LinkPatch) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.URL != nil {
		updates["url"] = *patch.URL
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&model.Link{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOrder writes a single link's order index.
func (r *LinkRepository) UpdateOrder(ctx context.Context, id uuid.UUID, orderIndex int) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.db.WithContext(ctx).Model(&model.Link{}).Where("id = ?", id).Update("order_index", orderIndex)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the link row.
func (r *LinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).Delete(&model.Link{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByHotel returns every link of a hotel ordered by order index.
func (r *LinkRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]model.Link, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("order_index").
		Find(&links).Error
	return links, err
}

// ListActiveByHotel returns the guest-facing view: active links only,
// ordered by order index. This is the read contract the public portal
// depends on.
func (r *LinkRepository) ListActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]model.Link, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND is_active = ?", hotelID, true).
		Order("order_index").
		Find(&links).Error
	return links, err
}
