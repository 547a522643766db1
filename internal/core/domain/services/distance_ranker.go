package services

import (
	"sort"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/restaurant"
)

// RankedCandidate is one position of a distance ranking: a capable
// restaurant and its great-circle distance from the delivery address in
// kilometers, rounded to three decimals.
type RankedCandidate struct {
	RestaurantID kernel.UUID
	Name         string
	DistanceKm   float64
}

// Ranking is the result of ranking a candidate set. Candidates are sorted
// ascending by distance; restaurants that could not be ranked because they
// have no coordinates are counted rather than silently dropped, so
// operators are never misled about coverage.
type Ranking struct {
	Candidates []RankedCandidate
	Excluded   int
}

// DistanceRanker is a domain service producing a deterministic proximity
// ordering of candidate restaurants around a delivery point.
//
// Ordering rules:
//   - Ascending by great-circle distance (haversine, see
//     kernel.GeoPoint.DistanceKm).
//   - Equal distances are broken by restaurant identity, so identical
//     inputs always yield identical sequences.
//   - Candidates without coordinates are excluded and counted.
type DistanceRanker struct{}

// NewDistanceRanker creates a DistanceRanker.
func NewDistanceRanker() DistanceRanker {
	return DistanceRanker{}
}

// Rank orders the candidate restaurants by distance from origin. Candidate
// restaurants must be valid aggregates; the origin must be a constructed
// point. Candidates lacking coordinates are excluded from the ranking and
// reflected in Ranking.Excluded.
func (DistanceRanker) Rank(origin kernel.GeoPoint, candidates []*restaurant.Restaurant) (Ranking, error) {
	if err := origin.Validate(); err != nil {
		return Ranking{}, err
	}

	ranking := Ranking{
		Candidates: make([]RankedCandidate, 0, len(candidates)),
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return Ranking{}, err
		}

		if !candidate.HasCoordinates() {
			ranking.Excluded++
			continue
		}

		distance, err := origin.DistanceKm(*candidate.Coordinates())
		if err != nil {
			return Ranking{}, err
		}

		ranking.Candidates = append(ranking.Candidates, RankedCandidate{
			RestaurantID: candidate.ID(),
			Name:         candidate.Name(),
			DistanceKm:   distance,
		})
	}

	sort.Slice(ranking.Candidates, func(a, b int) bool {
		left, right := ranking.Candidates[a], ranking.Candidates[b]
		if left.DistanceKm != right.DistanceKm {
			return left.DistanceKm < right.DistanceKm
		}
		return left.RestaurantID.String() < right.RestaurantID.String()
	})

	return ranking, nil
}
