// Package services contains stateless domain services of the dispatch
// engine: the AvailabilityIndex deciding which restaurants can prepare an
// order, and the DistanceRanker ordering capable restaurants by proximity
// to the delivery address. Both operate on in-memory snapshots and have no
// side effects.
package services
