package services

import (
	"sort"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/menu"
)

// AvailabilityIndex answers "which restaurants can prepare this exact set
// of products?" from a point-in-time snapshot of menu items.
//
// The index is built once per dispatch batch from the full menu snapshot
// and then queried per order, so capability checks cost a set-subset test
// instead of re-scanning the snapshot for every (order, restaurant) pair.
//
// Key properties:
//   - A restaurant qualifies only if every required product is on its
//     menu with available=true; a missing menu item counts as unavailable.
//   - Quantity never matters, only product presence; duplicate required
//     ids collapse.
//   - The index is a pure function of its input snapshot and is safe for
//     concurrent reads.
type AvailabilityIndex struct {
	availableByRestaurant map[kernel.UUID]map[kernel.UUID]struct{}
}

// NewAvailabilityIndex builds the restaurant to available-product-set
// mapping from a menu snapshot. Items with available=false contribute
// nothing: absence and unavailability are the same fact.
func NewAvailabilityIndex(snapshot []menu.MenuItem) *AvailabilityIndex {
	index := &AvailabilityIndex{
		availableByRestaurant: make(map[kernel.UUID]map[kernel.UUID]struct{}),
	}

	for _, item := range snapshot {
		if !item.Available() {
			continue
		}

		products, ok := index.availableByRestaurant[item.RestaurantID()]
		if !ok {
			products = make(map[kernel.UUID]struct{})
			index.availableByRestaurant[item.RestaurantID()] = products
		}
		products[item.ProductID()] = struct{}{}
	}

	return index
}

// CapableRestaurants returns the identities of every restaurant whose
// available-product set contains all required product ids. The result is
// sorted by identity so repeated calls yield identical sequences. An
// empty result is a valid outcome, not an error.
func (i *AvailabilityIndex) CapableRestaurants(required []kernel.UUID) []kernel.UUID {
	if len(required) == 0 {
		return nil
	}

	requiredSet := make(map[kernel.UUID]struct{}, len(required))
	for _, id := range required {
		requiredSet[id] = struct{}{}
	}

	capable := make([]kernel.UUID, 0, len(i.availableByRestaurant))
	for restaurantID, available := range i.availableByRestaurant {
		if containsAll(available, requiredSet) {
			capable = append(capable, restaurantID)
		}
	}

	sort.Slice(capable, func(a, b int) bool {
		return capable[a].String() < capable[b].String()
	})
	return capable
}

// CanPrepare reports whether a single restaurant can prepare every
// required product.
func (i *AvailabilityIndex) CanPrepare(restaurantID kernel.UUID, required []kernel.UUID) bool {
	available, ok := i.availableByRestaurant[restaurantID]
	if !ok {
		return false
	}

	for _, id := range required {
		if _, found := available[id]; !found {
			return false
		}
	}
	return true
}

func containsAll(set map[kernel.UUID]struct{}, subset map[kernel.UUID]struct{}) bool {
	if len(subset) > len(set) {
		return false
	}

	for id := range subset {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
