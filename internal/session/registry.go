// Package session maps authenticated users to their dashboard stores. The
// store is constructed once per user from the durable rows and kept for the
// life of the process; a single editor session per tenant is assumed.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"guestportal-service/internal/dashboard"
	"guestportal-service/internal/model"
	"guestportal-service/prometheus"
)

// UserStore resolves the session principal.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// LinkStore extends the dashboard's durable link operations with the ordered
// load used when a session is first built.
type LinkStore interface {
	dashboard.LinkStore
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]model.Link, error)
}

// Registry hands out one dashboard.Store per authenticated user.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*dashboard.Store

	users  UserStore
	hotels dashboard.HotelStore
	links  LinkStore
	log    *zap.Logger
}

func NewRegistry(users UserStore, hotels dashboard.HotelStore, links LinkStore, log *zap.Logger) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*dashboard.Store),
		users:    users,
		hotels:   hotels,
		links:    links,
		log:      log,
	}
}

// ForUser returns the user's dashboard store, building it from the durable
// rows on first access. Returns dashboard.ErrAuthRequired when the identity
// does not resolve to an account.
func (r *Registry) ForUser(ctx context.Context, userID uuid.UUID) (*dashboard.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		return s, nil
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, dashboard.ErrAuthRequired
	}

	hotel, err := r.hotels.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load hotel: %w", err)
	}

	var links []model.Link
	if hotel != nil {
		links, err = r.links.ListByHotel(ctx, hotel.ID)
		if err != nil {
			return nil, fmt.Errorf("load links: %w", err)
		}
	}

	s := dashboard.New(*user, hotel, links, nil, r.hotels, r.links, r.log.With(zap.String("user_id", userID.String())))
	r.sessions[userID] = s
	prometheus.SessionsLoadedCounter.Inc()
	r.log.Info("dashboard session loaded",
		zap.String("user_id", userID.String()),
		zap.Int("links", len(links)),
		zap.Bool("has_hotel", hotel != nil))
	return s, nil
}
