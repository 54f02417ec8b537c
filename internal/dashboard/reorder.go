package dashboard

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"guestportal-service/internal/model"
)

// ComputeOrders turns a drop event into new order assignments. The sequence
// already contains the moved link in its new position; old order values are
// not consulted for full-collection reorders, the position is authoritative.
//
// Two cases:
//
//   - the sequence covers the whole collection: every link gets order
//     index+1, yielding a dense 1..N run (this also compacts sparse runs
//     left behind by deletes);
//   - the sequence is a filtered subset (the UI scopes drag targets to the
//     visible category tab): the subset's existing order values are reused
//     as slots, assigned in ascending order to the new arrangement, so links
//     outside the filter keep their order values untouched.
//
// The returned map holds the new order for every link in the sequence.
// Idempotent: feeding back an already-correct sequence reproduces the same
// assignment.
func ComputeOrders(links []model.Link, sequence []uuid.UUID) (map[uuid.UUID]int, error) {
	byID := make(map[uuid.UUID]model.Link, len(links))
	for _, l := range links {
		byID[l.ID] = l
	}

	seen := make(map[uuid.UUID]bool, len(sequence))
	for _, id := range sequence {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrLinkNotFound, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate link %s", ErrInvalidSequence, id)
		}
		seen[id] = true
	}

	orders := make(map[uuid.UUID]int, len(sequence))
	if len(sequence) == len(links) {
		for i, id := range sequence {
			orders[id] = i + 1
		}
		return orders, nil
	}

	slots := make([]int, 0, len(sequence))
	for _, id := range sequence {
		slots = append(slots, byID[id].OrderIndex)
	}
	sort.Ints(slots)
	for i, id := range sequence {
		orders[id] = slots[i]
	}
	return orders, nil
}

// sortByOrder sorts links ascending by order index, in place. The sort is
// stable so equal values (possible mid-mutation) keep insertion order.
func sortByOrder(links []model.Link) {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].OrderIndex < links[j].OrderIndex
	})
}

// sortByPriority sorts activities ascending by priority (lower shows
// first), keeping insertion order for ties.
func sortByPriority(activities []model.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Priority < activities[j].Priority
	})
}

// nextOrder returns max(existing orders, 0) + 1 for a new link.
func nextOrder(links []model.Link) int {
	max := 0
	for _, l := range links {
		if l.OrderIndex > max {
			max = l.OrderIndex
		}
	}
	return max + 1
}
