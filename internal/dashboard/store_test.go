package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"guestportal-service/internal/model"
)

type fakeHotelStore struct {
	row        *model.Hotel
	failGet    bool
	failInsert bool
	failUpdate bool

	lookups  int
	inserts  int
	updates  int
	inserted model.Hotel
	updated  model.HotelPatch
}

func (f *fakeHotelStore) GetByUserID(_ context.Context, userID uuid.UUID) (*model.Hotel, error) {
	f.lookups++
	if f.failGet {
		return nil, errors.New("connection refused")
	}
	if f.row == nil || f.row.UserID != userID {
		return nil, nil
	}
	out := *f.row
	return &out, nil
}

func (f *fakeHotelStore) Insert(_ context.Context, hotel *model.Hotel) error {
	f.inserts++
	if f.failInsert {
		return errors.New("connection refused")
	}
	hotel.ID = uuid.New()
	f.inserted = *hotel
	row := *hotel
	f.row = &row
	return nil
}

func (f *fakeHotelStore) Update(_ context.Context, id uuid.UUID, patch model.HotelPatch) error {
	f.updates++
	if f.failUpdate {
		return errors.New("connection refused")
	}
	f.updated = patch
	patch.Apply(f.row)
	return nil
}

type orderCall struct {
	id    uuid.UUID
	order int
}

type fakeLinkStore struct {
	failInsert     bool
	failUpdate     bool
	failDelete     bool
	failOrderAfter int // fail UpdateOrder once this many calls succeeded; -1 never fails

	inserts    int
	updates    int
	deletes    int
	inserted   model.Link
	updated    model.LinkPatch
	orderCalls []orderCall
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{failOrderAfter: -1}
}

func (f *fakeLinkStore) Insert(_ context.Context, link *model.Link) (uuid.UUID, error) {
	f.inserts++
	if f.failInsert {
		return uuid.Nil, errors.New("connection refused")
	}
	f.inserted = *link
	return uuid.New(), nil
}

func (f *fakeLinkStore) Update(_ context.Context, _ uuid.UUID, patch model.LinkPatch) error {
	f.updates++
	if f.failUpdate {
		return errors.New("connection refused")
	}
	f.updated = patch
	return nil
}

func (f *fakeLinkStore) UpdateOrder(_ context.Context, id uuid.UUID, orderIndex int) error {
	if f.failOrderAfter >= 0 && len(f.orderCalls) >= f.failOrderAfter {
		return errors.New("connection refused")
	}
	f.orderCalls = append(f.orderCalls, orderCall{id: id, order: orderIndex})
	return nil
}

func (f *fakeLinkStore) Delete(_ context.Context, _ uuid.UUID) error {
	f.deletes++
	if f.failDelete {
		return errors.New("connection refused")
	}
	return nil
}

func testUser() model.User {
	return model.User{ID: uuid.New(), Name: "Carlos Rodriguez", Email: "carlos@smartstay.test", Role: model.RoleOwner}
}

func testHotel(userID uuid.UUID) *model.Hotel {
	return &model.Hotel{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Smart Stay Bariloche",
		PrimaryColor: model.DefaultPrimaryColor,
	}
}

func testLink(hotelID uuid.UUID, title string, category model.LinkCategory, order int) model.Link {
	return model.Link{
		ID:         uuid.New(),
		HotelID:    hotelID,
		Title:      title,
		URL:        "https://smartstay.test/" + title,
		Category:   category,
		OrderIndex: order,
		IsActive:   true,
	}
}

func newTestStore(t *testing.T, hotel *model.Hotel, links []model.Link) (*Store, *fakeHotelStore, *fakeLinkStore) {
	t.Helper()
	user := testUser()
	if hotel != nil {
		hotel.UserID = user.ID
	}
	hotels := &fakeHotelStore{}
	if hotel != nil {
		row := *hotel
		hotels.row = &row
	}
	linkDB := newFakeLinkStore()
	return New(user, hotel, links, nil, hotels, linkDB, zap.NewNop()), hotels, linkDB
}

func orderValues(links []model.Link) []int {
	out := make([]int, len(links))
	for i, l := range links {
		out[i] = l.OrderIndex
	}
	return out
}

func TestUpdateHotelInsertsThenUpdates(t *testing.T) {
	s, hotels, _ := newTestStore(t, nil, nil)
	ctx := context.Background()

	name := "Smart Stay Bariloche"
	got, err := s.UpdateHotel(ctx, model.HotelPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 1, hotels.inserts)
	assert.Equal(t, "Smart Stay Bariloche", hotels.inserted.Name)
	assert.NotEqual(t, uuid.Nil, got.ID)

	firstID := got.ID
	phone := "+54 294 123 4567"
	got, err = s.UpdateHotel(ctx, model.HotelPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, 1, hotels.inserts, "second save must not insert again")
	assert.Equal(t, 1, hotels.updates)
	assert.Equal(t, firstID, got.ID)
	assert.Equal(t, "+54 294 123 4567", got.Phone)
}

func TestUpdateHotelDefaultsNameOnFirstSave(t *testing.T) {
	s, hotels, _ := newTestStore(t, nil, nil)

	color := "#FF0000"
	got, err := s.UpdateHotel(context.Background(), model.HotelPatch{PrimaryColor: &color})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultHotelName, hotels.inserted.Name)
	assert.Equal(t, "#FF0000", got.PrimaryColor)
}

func TestUpdateHotelRollsBackOnFailure(t *testing.T) {
	user := testUser()
	hotel := testHotel(user.ID)
	s, hotels, _ := newTestStore(t, hotel, nil)
	hotels.failUpdate = true

	name := "Renamed"
	_, err := s.UpdateHotel(context.Background(), model.HotelPatch{Name: &name})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Smart Stay Bariloche", s.Hotel().Name, "in-memory hotel must revert to the pre-call snapshot")
}

func TestUpdateHotelRollsBackWhenLookupFails(t *testing.T) {
	s, hotels, _ := newTestStore(t, nil, nil)
	hotels.failGet = true

	name := "X"
	_, err := s.UpdateHotel(context.Background(), model.HotelPatch{Name: &name})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Nil(t, s.Hotel())
	assert.Zero(t, hotels.inserts)
}

func TestUpdateHotelRequiresUser(t *testing.T) {
	s := New(model.User{}, nil, nil, nil, &fakeHotelStore{}, newFakeLinkStore(), zap.NewNop())

	name := "X"
	_, err := s.UpdateHotel(context.Background(), model.HotelPatch{Name: &name})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestAddLinkRequiresHotel(t *testing.T) {
	s, hotels, linkDB := newTestStore(t, nil, nil)

	_, err := s.AddLink(context.Background(), LinkInput{Title: "WiFi", URL: "https://x.test", Category: model.LinkCategoryHotel, IsActive: true})

	assert.ErrorIs(t, err, ErrHotelRequired)
	assert.Zero(t, linkDB.inserts, "precondition failure must not reach the durable store")
	assert.Zero(t, hotels.lookups)
	assert.Empty(t, s.Links())
}

func TestAddLinkAssignsDenseOrders(t *testing.T) {
	user := testUser()
	hotel := testHotel(user.ID)
	s, _, _ := newTestStore(t, hotel, nil)
	ctx := context.Background()

	for _, title := range []string{"WiFi Password", "Room Service", "Spa"} {
		_, err := s.AddLink(ctx, LinkInput{Title: title, URL: "https://x.test", Category: model.LinkCategoryHotel, IsActive: true})
		require.NoError(t, err)
	}

	assert.Equal(t, []int{1, 2, 3}, orderValues(s.Links()))
}

func TestAddLinkUsesMaxPlusOneOnSparseOrders(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	links := []model.Link{
		testLink(hotel.ID, "a", model.LinkCategoryHotel, 1),
		testLink(hotel.ID, "c", model.LinkCategoryHotel, 3),
	}
	s, _, _ := newTestStore(t, hotel, links)

	got, err := s.AddLink(context.Background(), LinkInput{Title: "d", URL: "https://x.test", Category: model.LinkCategoryContact, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 4, got.OrderIndex)
}

func TestAddLinkSwapsTemporaryIdentity(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	s, _, linkDB := newTestStore(t, hotel, nil)

	got, err := s.AddLink(context.Background(), LinkInput{Title: "WiFi", URL: "https://x.test", Category: model.LinkCategoryHotel, IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, linkDB.inserted.ID, "placeholder identity must never reach the durable store")
	assert.NotEqual(t, uuid.Nil, got.ID)
	links := s.Links()
	require.Len(t, links, 1)
	assert.Equal(t, got.ID, links[0].ID)
}

func TestAddLinkRollsBackOnFailure(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	links := []model.Link{
		testLink(hotel.ID, "a", model.LinkCategoryHotel, 1),
		testLink(hotel.ID, "b", model.LinkCategoryHotel, 2),
	}
	s, _, linkDB := newTestStore(t, hotel, links)
	linkDB.failInsert = true

	_, err := s.AddLink(context.Background(), LinkInput{Title: "c", URL: "https://x.test", Category: model.LinkCategoryHotel, IsActive: true})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	got := s.Links()
	require.Len(t, got, 2)
	assert.Equal(t, links[0].ID, got[0].ID)
	assert.Equal(t, links[1].ID, got[1].ID)
}

func TestUpdateLinkMergesProvidedFieldsOnly(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	link := testLink(hotel.ID, "WiFi", model.LinkCategoryHotel, 1)
	s, _, linkDB := newTestStore(t, hotel, []model.Link{link})

	title := "WiFi Password"
	got, err := s.UpdateLink(context.Background(), link.ID, model.LinkPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "WiFi Password", got.Title)
	assert.Equal(t, link.URL, got.URL, "absent fields stay untouched")
	assert.Nil(t, linkDB.updated.URL)
	require.NotNil(t, linkDB.updated.Title)
	assert.Equal(t, "WiFi Password", *linkDB.updated.Title)
}

func TestUpdateLinkKeepsMergeOnFailure(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	link := testLink(hotel.ID, "WiFi", model.LinkCategoryHotel, 1)
	s, _, linkDB := newTestStore(t, hotel, []model.Link{link})
	linkDB.failUpdate = true

	title := "WiFi Password"
	_, err := s.UpdateLink(context.Background(), link.ID, model.LinkPatch{Title: &title})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	// Accepted asymmetry: partial merges are not snapshot-rolled-back.
	assert.Equal(t, "WiFi Password", s.Links()[0].Title)
}

func TestUpdateLinkUnknownID(t *testing.T) {
	s, _, linkDB := newTestStore(t, testHotel(uuid.Nil), nil)

	title := "x"
	_, err := s.UpdateLink(context.Background(), uuid.New(), model.LinkPatch{Title: &title})
	assert.ErrorIs(t, err, ErrLinkNotFound)
	assert.Zero(t, linkDB.updates)
}

func TestDeleteLinkRestoresSnapshotOnFailure(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	a := testLink(hotel.ID, "a", model.LinkCategoryHotel, 1)
	b := testLink(hotel.ID, "b", model.LinkCategoryHotel, 2)
	c := testLink(hotel.ID, "c", model.LinkCategoryHotel, 3)
	s, _, linkDB := newTestStore(t, hotel, []model.Link{a, b, c})
	linkDB.failDelete = true

	err := s.DeleteLink(context.Background(), b.ID)

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	got := s.Links()
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID, c.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []int{1, 2, 3}, orderValues(got))
}

func TestDeleteLinkLeavesSparseOrders(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	a := testLink(hotel.ID, "a", model.LinkCategoryHotel, 1)
	b := testLink(hotel.ID, "b", model.LinkCategoryHotel, 2)
	c := testLink(hotel.ID, "c", model.LinkCategoryHotel, 3)
	s, _, _ := newTestStore(t, hotel, []model.Link{a, b, c})

	require.NoError(t, s.DeleteLink(context.Background(), b.ID))

	// No automatic compaction after delete; the gap stays until a reorder.
	assert.Equal(t, []int{1, 3}, orderValues(s.Links()))
}

func TestReorderLinksCompactsToDenseRun(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	a := testLink(hotel.ID, "a", model.LinkCategoryHotel, 1)
	c := testLink(hotel.ID, "c", model.LinkCategoryHotel, 3)
	d := testLink(hotel.ID, "d", model.LinkCategoryContact, 7)
	s, _, _ := newTestStore(t, hotel, []model.Link{a, c, d})

	got, err := s.ReorderLinks(context.Background(), []uuid.UUID{d.ID, a.ID, c.ID})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, orderValues(got))
	assert.Equal(t, d.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
	assert.Equal(t, c.ID, got[2].ID)
}

func TestReorderLinksIsIdempotent(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	a := testLink(hotel.ID, "a", model.LinkCategoryHotel, 1)
	b := testLink(hotel.ID, "b", model.LinkCategoryHotel, 2)
	s, _, linkDB := newTestStore(t, hotel, []model.Link{a, b})
	ctx := context.Background()

	first, err := s.ReorderLinks(ctx, []uuid.UUID{b.ID, a.ID})
	require.NoError(t, err)
	persisted := len(linkDB.orderCalls)

	second, err := s.ReorderLinks(ctx, []uuid.UUID{b.ID, a.ID})
	require.NoError(t, err)

	assert.Equal(t, orderValues(first), orderValues(second))
	assert.Equal(t, persisted, len(linkDB.orderCalls), "an already-correct sequence persists nothing")
}

func TestReorderLinksWithinCategoryKeepsOthersUntouched(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	a := testLink(hotel.ID, "a", model.LinkCategoryHotel, 1)
	b := testLink(hotel.ID, "b", model.LinkCategoryActivities, 2)
	c := testLink(hotel.ID, "c", model.LinkCategoryHotel, 3)
	s, _, linkDB := newTestStore(t, hotel, []model.Link{a, b, c})

	got, err := s.ReorderLinks(context.Background(), []uuid.UUID{c.ID, a.ID})
	require.NoError(t, err)

	byID := make(map[uuid.UUID]int)
	for _, l := range got {
		byID[l.ID] = l.OrderIndex
	}
	assert.Less(t, byID[c.ID], byID[a.ID])
	assert.Equal(t, 2, byID[b.ID], "links outside the filtered view keep their order")
	assert.Equal(t, 1, byID[c.ID])
	assert.Equal(t, 3, byID[a.ID])
	assert.Len(t, linkDB.orderCalls, 2)
}

func TestReorderLinksPartialFailureLeavesMemoryReordered(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	a := testLink(hotel.ID, "a", model.LinkCategoryHotel, 1)
	b := testLink(hotel.ID, "b", model.LinkCategoryHotel, 2)
	c := testLink(hotel.ID, "c", model.LinkCategoryHotel, 3)
	s, _, linkDB := newTestStore(t, hotel, []model.Link{a, b, c})
	linkDB.failOrderAfter = 1

	_, err := s.ReorderLinks(context.Background(), []uuid.UUID{c.ID, b.ID, a.ID})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	// Accepted inconsistency window: memory holds the full reorder, the
	// durable store only the persisted prefix.
	got := s.Links()
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, a.ID, got[2].ID)
	assert.Len(t, linkDB.orderCalls, 1)
}

func TestReorderLinksRejectsUnknownID(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	a := testLink(hotel.ID, "a", model.LinkCategoryHotel, 1)
	s, _, linkDB := newTestStore(t, hotel, []model.Link{a})

	_, err := s.ReorderLinks(context.Background(), []uuid.UUID{a.ID, uuid.New()})
	assert.ErrorIs(t, err, ErrLinkNotFound)
	assert.Empty(t, linkDB.orderCalls)
	assert.Equal(t, []int{1}, orderValues(s.Links()))
}

func TestActivityLifecycle(t *testing.T) {
	s, _, _ := newTestStore(t, testHotel(uuid.Nil), nil)

	ski := s.AddActivity(ActivityInput{Title: "Cerro Catedral Skiing", Description: "d", ImageURL: "https://x.test/ski.jpg", WeatherCondition: model.WeatherSnowy, Priority: 1, IsActive: true})
	kayak := s.AddActivity(ActivityInput{Title: "Kayaking", Description: "d", ImageURL: "https://x.test/kayak.jpg", WeatherCondition: model.WeatherSunny, Priority: 1, IsActive: true})
	wine := s.AddActivity(ActivityInput{Title: "Wine Tasting", Description: "d", ImageURL: "https://x.test/wine.jpg", WeatherCondition: model.WeatherRainy, Priority: 5, IsActive: true})

	assert.NotEqual(t, ski.ID, kayak.ID)

	got := s.Activities()
	require.Len(t, got, 3)
	// Priority ties break by insertion order.
	assert.Equal(t, ski.ID, got[0].ID)
	assert.Equal(t, kayak.ID, got[1].ID)
	assert.Equal(t, wine.ID, got[2].ID)

	priority := 2
	updated, err := s.UpdateActivity(wine.ID, model.ActivityPatch{Priority: &priority})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Priority)

	require.NoError(t, s.DeleteActivity(kayak.ID))
	assert.Len(t, s.Activities(), 2)

	assert.ErrorIs(t, s.DeleteActivity("missing"), ErrActivityNotFound)
	_, err = s.UpdateActivity("missing", model.ActivityPatch{})
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestUpdateUserMergesProfileFields(t *testing.T) {
	s, _, _ := newTestStore(t, nil, nil)

	name := "Ana"
	got := s.UpdateUser(model.UserPatch{Name: &name})
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "carlos@smartstay.test", got.Email)
}

func TestLinksReturnsACopy(t *testing.T) {
	hotel := testHotel(uuid.Nil)
	a := testLink(hotel.ID, "a", model.LinkCategoryHotel, 1)
	s, _, _ := newTestStore(t, hotel, []model.Link{a})

	got := s.Links()
	got[0].Title = "mutated"
	assert.Equal(t, "a", s.Links()[0].Title)
}
