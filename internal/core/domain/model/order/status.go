package order

import (
	"fmt"

	"starburger/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a
// strictly forward-moving state machine with no backward transitions.
//
// State transitions:
//
//	NotProcessed ──> Cooking ──> Delivering ──> Completed
//
// Each transition method validates the current state and returns the next
// one, so an order can never skip a stage or move backwards.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// NotProcessed is the initial status of a freshly registered order.
	// Orders in this status are waiting for an operator to dispatch them
	// to a restaurant.
	NotProcessed

	// Cooking indicates the order has been dispatched to a restaurant
	// that is preparing it.
	Cooking

	// Delivering indicates the prepared order is on its way to the
	// customer.
	Delivering

	// Completed indicates the order has been delivered. This is a final
	// state with no further transitions.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		NotProcessed:  "NotProcessed",
		Cooking:       "Cooking",
		Delivering:    "Delivering",
		Completed:     "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotProcessed: "NotProcessed",
		Cooking:      "Cooking",
		Delivering:   "Delivering",
		Completed:    "Completed",
	}
}

// Validate checks that the Status holds one of the defined lifecycle
// values. Used when reconstructing orders from external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the order lifecycle has ended.
func (s Status) IsFinal() bool {
	return s == Completed
}

// ValidateAssign checks that a restaurant may be assigned from the current
// status without performing the transition. Only NotProcessed orders can
// be dispatched; once cooking has started the assignment is fixed.
func (s Status) ValidateAssign() error {
	if s != NotProcessed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign a restaurant", s),
		)
	}
	return nil
}

// ValidateCanHaveRestaurant validates the consistency between the order
// status and restaurant assignment: an order has a restaurant if and only
// if it has progressed past NotProcessed.
func (s Status) ValidateCanHaveRestaurant(hasRestaurant bool) error {
	if hasRestaurant && s == NotProcessed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a restaurant", s),
		)
	}

	if !hasRestaurant && s != NotProcessed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no restaurant", s),
		)
	}

	return nil
}

// Cook transitions NotProcessed -> Cooking.
func (s Status) Cook() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Cooking, nil
}

// Deliver transitions Cooking -> Delivering.
func (s Status) Deliver() (Status, error) {
	if s != Cooking {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start delivery", s),
		)
	}

	return Delivering, nil
}

// Complete transitions Delivering -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}

	return Completed, nil
}
