package services_test

import (
	"testing"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/restaurant"
	"starburger/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRestaurant(t *testing.T, name string, lat, lon float64) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name)
	require.NoError(t, err)
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	require.NoError(t, r.SetCoordinates(point))
	return r
}

func makeRestaurantWithoutCoordinates(t *testing.T, name string) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name)
	require.NoError(t, err)
	return r
}

func TestDistanceRanker_Rank(t *testing.T) {
	ranker := services.NewDistanceRanker()

	origin, err := kernel.NewGeoPoint(55.751244, 37.618423)
	require.NoError(t, err)

	t.Run("nearest_restaurant_first", func(t *testing.T) {
		near := makeRestaurant(t, "Theatre Square", 55.755826, 37.617300)
		far := makeRestaurant(t, "Gorky Park", 55.733842, 37.587158)

		ranking, err := ranker.Rank(origin, []*restaurant.Restaurant{far, near})
		require.NoError(t, err)

		require.Len(t, ranking.Candidates, 2)
		assert.True(t, ranking.Candidates[0].RestaurantID.IsEqual(near.ID()))
		assert.True(t, ranking.Candidates[1].RestaurantID.IsEqual(far.ID()))
		assert.Less(t, ranking.Candidates[0].DistanceKm, ranking.Candidates[1].DistanceKm)
		assert.Zero(t, ranking.Excluded)
	})

	t.Run("distances_rounded_to_three_decimals", func(t *testing.T) {
		near := makeRestaurant(t, "Theatre Square", 55.755826, 37.617300)

		ranking, err := ranker.Rank(origin, []*restaurant.Restaurant{near})
		require.NoError(t, err)

		require.Len(t, ranking.Candidates, 1)
		km := ranking.Candidates[0].DistanceKm
		assert.InDelta(t, km, float64(int(km*1000+0.5))/1000, 1e-9)
	})

	t.Run("colinear_points_rank_monotonically", func(t *testing.T) {
		// Same meridian, increasing latitude offsets from the origin.
		steps := []*restaurant.Restaurant{
			makeRestaurant(t, "one", 55.761244, 37.618423),
			makeRestaurant(t, "two", 55.771244, 37.618423),
			makeRestaurant(t, "three", 55.781244, 37.618423),
			makeRestaurant(t, "four", 55.791244, 37.618423),
		}
		shuffled := []*restaurant.Restaurant{steps[2], steps[0], steps[3], steps[1]}

		ranking, err := ranker.Rank(origin, shuffled)
		require.NoError(t, err)

		require.Len(t, ranking.Candidates, 4)
		for i, want := range steps {
			assert.Equal(t, want.Name(), ranking.Candidates[i].Name)
		}
		for i := 1; i < len(ranking.Candidates); i++ {
			assert.Greater(t, ranking.Candidates[i].DistanceKm, ranking.Candidates[i-1].DistanceKm)
		}
	})

	t.Run("candidates_without_coordinates_are_excluded_and_counted", func(t *testing.T) {
		near := makeRestaurant(t, "Theatre Square", 55.755826, 37.617300)
		unresolved := makeRestaurantWithoutCoordinates(t, "New Branch")
		another := makeRestaurantWithoutCoordinates(t, "Another Branch")

		ranking, err := ranker.Rank(origin, []*restaurant.Restaurant{unresolved, near, another})
		require.NoError(t, err)

		require.Len(t, ranking.Candidates, 1)
		assert.Equal(t, "Theatre Square", ranking.Candidates[0].Name)
		assert.Equal(t, 2, ranking.Excluded)
	})

	t.Run("equal_distances_break_ties_by_restaurant_id", func(t *testing.T) {
		twinA := makeRestaurant(t, "Twin A", 55.755826, 37.617300)
		twinB := makeRestaurant(t, "Twin B", 55.755826, 37.617300)

		first, err := ranker.Rank(origin, []*restaurant.Restaurant{twinA, twinB})
		require.NoError(t, err)
		second, err := ranker.Rank(origin, []*restaurant.Restaurant{twinB, twinA})
		require.NoError(t, err)

		require.Len(t, first.Candidates, 2)
		assert.Equal(t, first.Candidates, second.Candidates)

		wantFirst := twinA.ID()
		if twinB.ID().String() < twinA.ID().String() {
			wantFirst = twinB.ID()
		}
		assert.True(t, first.Candidates[0].RestaurantID.IsEqual(wantFirst))
	})

	t.Run("empty_candidate_list_yields_empty_ranking", func(t *testing.T) {
		ranking, err := ranker.Rank(origin, nil)
		require.NoError(t, err)

		assert.Empty(t, ranking.Candidates)
		assert.Zero(t, ranking.Excluded)
	})

	t.Run("unconstructed_origin_fails", func(t *testing.T) {
		_, err := ranker.Rank(kernel.GeoPoint{}, nil)
		assert.Error(t, err)
	})
}
