// Package kernel contains the shared value objects of the domain model:
// UUID identity and GeoPoint geographic coordinates. These types are
// immutable, validated on construction, and carry no behavior specific to
// any single aggregate.
package kernel
