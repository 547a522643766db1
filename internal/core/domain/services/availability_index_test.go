package services_test

import (
	"testing"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/menu"
	"starburger/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMenuItem(t *testing.T, restaurantID, productID kernel.UUID, available bool) menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(restaurantID, productID, available)
	require.NoError(t, err)
	return item
}

func TestAvailabilityIndex_CapableRestaurants(t *testing.T) {
	restaurantX := kernel.NewUUID()
	restaurantY := kernel.NewUUID()
	product1 := kernel.NewUUID()
	product2 := kernel.NewUUID()
	product3 := kernel.NewUUID()

	// X offers {1,2}; Y offers {1,2,3}.
	snapshot := []menu.MenuItem{
		makeMenuItem(t, restaurantX, product1, true),
		makeMenuItem(t, restaurantX, product2, true),
		makeMenuItem(t, restaurantY, product1, true),
		makeMenuItem(t, restaurantY, product2, true),
		makeMenuItem(t, restaurantY, product3, true),
	}
	index := services.NewAvailabilityIndex(snapshot)

	t.Run("both_capable_for_subset", func(t *testing.T) {
		capable := index.CapableRestaurants([]kernel.UUID{product1, product2})

		assert.Len(t, capable, 2)
		assert.Contains(t, capable, restaurantX)
		assert.Contains(t, capable, restaurantY)
	})

	t.Run("only_full_menu_restaurant_for_superset", func(t *testing.T) {
		capable := index.CapableRestaurants([]kernel.UUID{product1, product2, product3})

		require.Len(t, capable, 1)
		assert.True(t, capable[0].IsEqual(restaurantY))
	})

	t.Run("all_items_must_match_not_any", func(t *testing.T) {
		unknown := kernel.NewUUID()
		capable := index.CapableRestaurants([]kernel.UUID{product1, unknown})

		assert.Empty(t, capable)
	})

	t.Run("duplicate_required_ids_collapse", func(t *testing.T) {
		capable := index.CapableRestaurants([]kernel.UUID{product1, product1, product2})

		assert.Len(t, capable, 2)
	})

	t.Run("empty_required_set_yields_nothing", func(t *testing.T) {
		assert.Empty(t, index.CapableRestaurants(nil))
	})

	t.Run("result_is_deterministic", func(t *testing.T) {
		first := index.CapableRestaurants([]kernel.UUID{product1, product2})
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, index.CapableRestaurants([]kernel.UUID{product1, product2}))
		}
	})
}

func TestAvailabilityIndex_UnavailableEqualsAbsent(t *testing.T) {
	restaurantID := kernel.NewUUID()
	product1 := kernel.NewUUID()
	product2 := kernel.NewUUID()

	t.Run("unavailable_item_disqualifies", func(t *testing.T) {
		index := services.NewAvailabilityIndex([]menu.MenuItem{
			makeMenuItem(t, restaurantID, product1, true),
			makeMenuItem(t, restaurantID, product2, false),
		})

		assert.Empty(t, index.CapableRestaurants([]kernel.UUID{product1, product2}))
		assert.Len(t, index.CapableRestaurants([]kernel.UUID{product1}), 1)
	})

	t.Run("missing_item_disqualifies_identically", func(t *testing.T) {
		index := services.NewAvailabilityIndex([]menu.MenuItem{
			makeMenuItem(t, restaurantID, product1, true),
		})

		assert.Empty(t, index.CapableRestaurants([]kernel.UUID{product1, product2}))
	})
}

func TestAvailabilityIndex_RemovingAvailabilityRemovesRestaurant(t *testing.T) {
	restaurantID := kernel.NewUUID()
	product1 := kernel.NewUUID()
	product2 := kernel.NewUUID()

	full := services.NewAvailabilityIndex([]menu.MenuItem{
		makeMenuItem(t, restaurantID, product1, true),
		makeMenuItem(t, restaurantID, product2, true),
	})
	require.Len(t, full.CapableRestaurants([]kernel.UUID{product1, product2}), 1)

	// Flipping any single product to unavailable removes the restaurant
	// from every result containing that product.
	degraded := services.NewAvailabilityIndex([]menu.MenuItem{
		makeMenuItem(t, restaurantID, product1, false),
		makeMenuItem(t, restaurantID, product2, true),
	})
	assert.Empty(t, degraded.CapableRestaurants([]kernel.UUID{product1, product2}))
	assert.Empty(t, degraded.CapableRestaurants([]kernel.UUID{product1}))
	assert.Len(t, degraded.CapableRestaurants([]kernel.UUID{product2}), 1)
}

func TestAvailabilityIndex_CanPrepare(t *testing.T) {
	restaurantID := kernel.NewUUID()
	product1 := kernel.NewUUID()
	product2 := kernel.NewUUID()

	index := services.NewAvailabilityIndex([]menu.MenuItem{
		makeMenuItem(t, restaurantID, product1, true),
	})

	assert.True(t, index.CanPrepare(restaurantID, []kernel.UUID{product1}))
	assert.False(t, index.CanPrepare(restaurantID, []kernel.UUID{product1, product2}))
	assert.False(t, index.CanPrepare(kernel.NewUUID(), []kernel.UUID{product1}))
}
