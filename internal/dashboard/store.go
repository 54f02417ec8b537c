package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"guestportal-service/internal/model"
)

// HotelStore is the durable backing for the hotels collection. GetByUserID
// returns (nil, nil) when no row exists for the user.
type HotelStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Hotel, error)
	Insert(ctx context.Context, hotel *model.Hotel) error
	Update(ctx context.Context, id uuid.UUID, patch model.HotelPatch) error
}

// LinkStore is the durable backing for the links collection. Insert assigns
// and returns the durable identity.
type LinkStore interface {
	Insert(ctx context.Context, link *model.Link) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch model.LinkPatch) error
	UpdateOrder(ctx context.Context, id uuid.UUID, orderIndex int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store is the in-memory source of truth for one operator session: the
// hotel profile, the user, the link collection, and the activity collection.
// Every mutation is optimistic: the change lands in memory first, then the
// durable call runs, and on failure the affected state reverts to the
// snapshot taken before the change. Mutations are serialized by a mutex so
// overlapping calls (a fast double-click delete, say) each roll back only
// their own change.
type Store struct {
	mu         sync.Mutex
	user       model.User
	hotel      *model.Hotel
	links      []model.Link
	activities []model.Activity

	hotels HotelStore
	linkDB LinkStore
	ids    *idGenerator
	log    *zap.Logger
}

// New builds a session store from state already loaded out of the durable
// store. hotel may be nil when the operator has not saved branding yet.
func New(user model.User, hotel *model.Hotel, links []model.Link, activities []model.Activity, hotels HotelStore, linkDB LinkStore, log *zap.Logger) *Store {
	s := &Store{
		user:       user,
		hotel:      cloneHotel(hotel),
		links:      cloneLinks(links),
		activities: cloneActivities(activities),
		hotels:     hotels,
		linkDB:     linkDB,
		ids:        newIDGenerator(),
		log:        log,
	}
	sortByOrder(s.links)
	return s
}

// User returns the session principal.
func (s *Store) User() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Hotel returns a copy of the hotel profile, or nil before first save.
func (s *Store) Hotel() *model.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneHotel(s.hotel)
}

// Links returns a copy of the link collection in display order.
func (s *Store) Links() []model.Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := cloneLinks(s.links)
	sortByOrder(out)
	return out
}

// Activities returns a copy of the activity collection sorted by priority;
// ties keep insertion order.
func (s *Store) Activities() []model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := cloneActivities(s.activities)
	sortByPriority(out)
	return out
}

// UpdateHotel merges the patch into the in-memory hotel and upserts the
// durable row keyed by the session user: insert when no row exists yet
// (with a default name if the patch carries none), update otherwise. On a
// durable failure the in-memory hotel reverts to its pre-call snapshot.
func (s *Store) UpdateHotel(ctx context.Context, patch model.HotelPatch) (*model.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user.ID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	prev := cloneHotel(s.hotel)
	now := time.Now()

	if s.hotel == nil {
		s.hotel = &model.Hotel{
			UserID:       s.user.ID,
			Name:         model.DefaultHotelName,
			PrimaryColor: model.DefaultPrimaryColor,
			CreatedAt:    now,
		}
	}
	patch.Apply(s.hotel)
	s.hotel.UpdatedAt = now

	existing, err := s.hotels.GetByUserID(ctx, s.user.ID)
	if err != nil {
		s.hotel = prev
		return nil, persistErr("look up hotel", err)
	}

	if existing == nil {
		row := *s.hotel
		if err := s.hotels.Insert(ctx, &row); err != nil {
			s.hotel = prev
			return nil, persistErr("insert hotel", err)
		}
		s.hotel.ID = row.ID
		s.hotel.CreatedAt = row.CreatedAt
		s.log.Info("hotel created", zap.String("hotel_id", row.ID.String()))
	} else {
		if err := s.hotels.Update(ctx, existing.ID, patch); err != nil {
			s.hotel = prev
			return nil, persistErr("update hotel", err)
		}
		s.hotel.ID = existing.ID
		s.hotel.CreatedAt = existing.CreatedAt
	}

	return cloneHotel(s.hotel), nil
}

// LinkInput is the validated payload for a new link.
type LinkInput struct {
	Title       string
	URL         string
	Description *string
	Icon        *string
	Category    model.LinkCategory
	IsActive    bool
}

// AddLink appends a link with order max+1 under a temporary local identity,
// then inserts the durable row. The placeholder identity is swapped for the
// durable one on success and the entry is removed on failure. Fails fast
// with ErrHotelRequired (no durable call) when no hotel exists yet.
func (s *Store) AddLink(ctx context.Context, input LinkInput) (*model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hotel == nil || s.hotel.ID == uuid.Nil {
		return nil, ErrHotelRequired
	}

	tempID := uuid.New()
	link := model.Link{
		ID:          tempID,
		HotelID:     s.hotel.ID,
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		Icon:        input.Icon,
		Category:    input.Category,
		OrderIndex:  nextOrder(s.links),
		IsActive:    input.IsActive,
		CreatedAt:   time.Now(),
	}
	s.links = append(s.links, link)

	// The placeholder identity never reaches the durable store.
	row := link
	row.ID = uuid.Nil
	id, err := s.linkDB.Insert(ctx, &row)
	if err != nil {
		s.removeLink(tempID)
		return nil, persistErr("insert link", err)
	}

	for i := range s.links {
		if s.links[i].ID == tempID {
			s.links[i].ID = id
			link = s.links[i]
			break
		}
	}
	return &link, nil
}

// UpdateLink merges the patch into the matching in-memory link and issues a
// durable update for the provided fields only. A durable failure is surfaced
// but the in-memory merge is not reverted: partial-field updates make
// snapshot rollback ambiguous, an accepted asymmetry.
func (s *Store) UpdateLink(ctx context.Context, id uuid.UUID, patch model.LinkPatch) (*model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findLink(id)
	if idx < 0 {
		return nil, ErrLinkNotFound
	}
	patch.Apply(&s.links[idx])
	link := s.links[idx]

	if err := s.linkDB.Update(ctx, id, patch); err != nil {
		return nil, persistErr("update link", err)
	}
	return &link, nil
}

// DeleteLink removes the link from memory and the durable store. On durable
// failure the full pre-delete collection is restored. Remaining links are
// not renumbered; a sparse order run is valid until the next reorder.
func (s *Store) DeleteLink(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLink(id) < 0 {
		return ErrLinkNotFound
	}
	snapshot := cloneLinks(s.links)
	s.removeLink(id)

	if err := s.linkDB.Delete(ctx, id); err != nil {
		s.links = snapshot
		return persistErr("delete link", err)
	}
	return nil
}

// ReorderLinks applies a drop event. The sequence must list link IDs in
// their new arrangement: the whole collection for an unfiltered view, or
// just the visible subset for a category tab. New order values are computed
// by ComputeOrders, applied to memory, then persisted one row at a time in
// sequence order. A mid-sequence failure leaves memory fully reordered
// while the durable store holds only the persisted prefix; the error is
// surfaced and the window closes on the next successful reorder.
func (s *Store) ReorderLinks(ctx context.Context, sequence []uuid.UUID) ([]model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := ComputeOrders(s.links, sequence)
	if err != nil {
		return nil, err
	}

	changed := make([]uuid.UUID, 0, len(sequence))
	for _, id := range sequence {
		idx := s.findLink(id)
		if s.links[idx].OrderIndex != orders[id] {
			s.links[idx].OrderIndex = orders[id]
			changed = append(changed, id)
		}
	}
	sortByOrder(s.links)

	for _, id := range changed {
		if err := s.linkDB.UpdateOrder(ctx, id, orders[id]); err != nil {
			s.log.Warn("link order persisted partially",
				zap.String("link_id", id.String()),
				zap.Error(err))
			return nil, persistErr("persist link order", err)
		}
	}
	return cloneLinks(s.links), nil
}

// ActivityInput is the validated payload for a new activity.
type ActivityInput struct {
	Title            string
	Description      string
	ImageURL         string
	WeatherCondition model.WeatherCondition
	Priority         int
	IsActive         bool
}

// AddActivity appends an activity to the session collection. Activities are
// not persisted in the current product stage.
func (s *Store) AddActivity(input ActivityInput) model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := model.Activity{
		ID:               s.ids.Next(),
		Title:            input.Title,
		Description:      input.Description,
		ImageURL:         input.ImageURL,
		WeatherCondition: input.WeatherCondition,
		Priority:         input.Priority,
		IsActive:         input.IsActive,
		CreatedAt:        time.Now(),
	}
	s.activities = append(s.activities, activity)
	return activity
}

// UpdateActivity merges the patch into the matching activity.
func (s *Store) UpdateActivity(id string, patch model.ActivityPatch) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			patch.Apply(&s.activities[i])
			return s.activities[i], nil
		}
	}
	return model.Activity{}, ErrActivityNotFound
}

// DeleteActivity removes the matching activity.
func (s *Store) DeleteActivity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			return nil
		}
	}
	return ErrActivityNotFound
}

// UpdateUser merges a profile edit into the session user. The durable user
// row is owned by the auth layer; this store only tracks the in-session view.
func (s *Store) UpdateUser(patch model.UserPatch) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.Apply(&s.user)
	return s.user
}

func (s *Store) findLink(id uuid.UUID) int {
	for i := range s.links {
		if s.links[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeLink(id uuid.UUID) {
	for i := range s.links {
		if s.links[i].ID == id {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return
		}
	}
}

func cloneHotel(h *model.Hotel) *model.Hotel {
	if h == nil {
		return nil
	}
	out := *h
	return &out
}

func cloneLinks(links []model.Link) []model.Link {
	out := make([]model.Link, len(links))
	copy(out, links)
	return out
}

func cloneActivities(activities []model.Activity) []model.Activity {
	out := make([]model.Activity, len(activities))
	copy(out, activities)
	return out
}
