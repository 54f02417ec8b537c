package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestportal-service/internal/model"
)

func linkWithOrder(category model.LinkCategory, order int) model.Link {
	return model.Link{ID: uuid.New(), Category: category, OrderIndex: order}
}

func TestComputeOrdersFullSequence(t *testing.T) {
	a := linkWithOrder(model.LinkCategoryHotel, 1)
	b := linkWithOrder(model.LinkCategoryHotel, 2)
	c := linkWithOrder(model.LinkCategoryContact, 3)

	orders, err := ComputeOrders([]model.Link{a, b, c}, []uuid.UUID{c.ID, a.ID, b.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, orders[c.ID])
	assert.Equal(t, 2, orders[a.ID])
	assert.Equal(t, 3, orders[b.ID])
}

func TestComputeOrdersCompactsSparseRun(t *testing.T) {
	a := linkWithOrder(model.LinkCategoryHotel, 2)
	b := linkWithOrder(model.LinkCategoryHotel, 5)
	c := linkWithOrder(model.LinkCategoryHotel, 9)

	orders, err := ComputeOrders([]model.Link{a, b, c}, []uuid.UUID{a.ID, b.ID, c.ID})
	require.NoError(t, err)

	// A full-collection pass always yields a dense 1..N run.
	assert.Equal(t, map[uuid.UUID]int{a.ID: 1, b.ID: 2, c.ID: 3}, orders)
}

func TestComputeOrdersSubsetReusesSlots(t *testing.T) {
	a := linkWithOrder(model.LinkCategoryHotel, 1)
	b := linkWithOrder(model.LinkCategoryActivities, 2)
	c := linkWithOrder(model.LinkCategoryHotel, 3)

	orders, err := ComputeOrders([]model.Link{a, b, c}, []uuid.UUID{c.ID, a.ID})
	require.NoError(t, err)

	assert.Equal(t, map[uuid.UUID]int{c.ID: 1, a.ID: 3}, orders)
	_, touched := orders[b.ID]
	assert.False(t, touched)
}

func TestComputeOrdersIsIdempotent(t *testing.T) {
	a := linkWithOrder(model.LinkCategoryHotel, 1)
	b := linkWithOrder(model.LinkCategoryHotel, 2)
	links := []model.Link{a, b}
	seq := []uuid.UUID{a.ID, b.ID}

	first, err := ComputeOrders(links, seq)
	require.NoError(t, err)
	second, err := ComputeOrders(links, seq)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, first[a.ID])
	assert.Equal(t, 2, first[b.ID])
}

func TestComputeOrdersRejectsUnknownAndDuplicateIDs(t *testing.T) {
	a := linkWithOrder(model.LinkCategoryHotel, 1)

	_, err := ComputeOrders([]model.Link{a}, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, ErrLinkNotFound)

	_, err = ComputeOrders([]model.Link{a}, []uuid.UUID{a.ID, a.ID})
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 1, nextOrder(nil))
	assert.Equal(t, 4, nextOrder([]model.Link{linkWithOrder(model.LinkCategoryHotel, 3), linkWithOrder(model.LinkCategoryHotel, 1)}))
}
