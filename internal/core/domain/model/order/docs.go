// Package order contains the Order aggregate and its value objects:
// lifecycle Status, Payment method, and the order Line with its captured
// price. The aggregate enforces the forward-only lifecycle, the
// restaurant-assignment consistency rule, and the resolve-once contract
// for delivery coordinates.
package order
