package order

import (
	"errors"
	"time"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrFirstnameIsRequired is returned when the customer firstname is empty.
	ErrFirstnameIsRequired = errs.NewValueIsRequiredError("firstname")
	// ErrLastnameIsRequired is returned when the customer lastname is empty.
	ErrLastnameIsRequired = errs.NewValueIsRequiredError("lastname")
	// ErrPhoneIsRequired is returned when the customer phone is empty.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAddressIsRequired is returned when the delivery address is empty.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrLinesAreRequired is returned when an order is created without lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")

	// ErrCoordinatesAlreadyResolved is returned when attempting to set
	// coordinates on an order that already has them. Once resolved, an
	// order's coordinates are stable for its lifetime: silently
	// re-resolving could change a ranking a human has already acted on.
	ErrCoordinatesAlreadyResolved = errors.New("order coordinates are already resolved")
)

// Order is the aggregate root for a customer order. It owns its lines
// exclusively and manages the lifecycle from registration through
// dispatch to completion.
//
// Invariants:
//   - At least one line, each referencing a valid product with quantity >= 1
//   - Status follows the forward-only NotProcessed -> Cooking ->
//     Delivering -> Completed machine
//   - A restaurant is assigned if and only if the status has progressed
//     past NotProcessed
//   - Delivery coordinates, once resolved, never change
type Order struct {
	id           kernel.UUID
	firstname    string
	lastname     string
	phone        string
	address      string
	comment      string
	coordinates  *kernel.GeoPoint
	status       Status
	payment      Payment
	restaurantID *kernel.UUID
	registeredAt time.Time
	calledAt     *time.Time
	deliveredAt  *time.Time
	lines        []Line

	isConstructed bool
}

// NewOrder registers a new Order in NotProcessed status. All customer
// fields except the comment are required, and at least one line must be
// supplied. The registration timestamp is recorded in UTC.
//
// Example:
//
//	line, _ := order.NewLine(productID, 2, decimal.NewFromInt(450))
//	o, err := order.NewOrder(kernel.NewUUID(),
//	    "Ivan", "Petrov", "+79990000000", "1 Tverskaya st", order.Cash,
//	    []order.Line{line})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	firstname string,
	lastname string,
	phone string,
	address string,
	payment Payment,
	lines []Line,
) (*Order, error) {
	order := &Order{
		status:        NotProcessed,
		registeredAt:  time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setFirstname(firstname),
		order.setLastname(lastname),
		order.setPhone(phone),
		order.setAddress(address),
		order.setPayment(payment),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// The status/restaurant consistency rule is re-validated so corrupt rows
// cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	firstname string,
	lastname string,
	phone string,
	address string,
	comment string,
	coordinates *kernel.GeoPoint,
	status Status,
	payment Payment,
	restaurantID *kernel.UUID,
	registeredAt time.Time,
	calledAt *time.Time,
	deliveredAt *time.Time,
	lines []Line,
) (*Order, error) {
	order, err := NewOrder(id, firstname, lastname, phone, address, payment, lines)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveRestaurant(restaurantID != nil); err != nil {
		return nil, err
	}
	if restaurantID != nil {
		if err = restaurantID.Validate(); err != nil {
			return nil, err
		}
	}
	if coordinates != nil {
		if err = coordinates.Validate(); err != nil {
			return nil, err
		}
	}

	order.comment = comment
	order.coordinates = coordinates
	order.status = status
	order.restaurantID = restaurantID
	order.registeredAt = registeredAt
	order.calledAt = calledAt
	order.deliveredAt = deliveredAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Firstname returns the customer firstname.
func (o *Order) Firstname() string {
	return o.firstname
}

// Lastname returns the customer lastname.
func (o *Order) Lastname() string {
	return o.lastname
}

// Phone returns the customer contact phone.
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the free-text delivery address.
func (o *Order) Address() string {
	return o.address
}

// Comment returns the optional order comment.
func (o *Order) Comment() string {
	return o.comment
}

// Coordinates returns the resolved delivery coordinates, nil while the
// address has not been geocoded.
func (o *Order) Coordinates() *kernel.GeoPoint {
	return o.coordinates
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Payment returns the payment method.
func (o *Order) Payment() Payment {
	return o.payment
}

// Restaurant returns the assigned restaurant's identity, nil while the
// order has not been dispatched.
func (o *Order) Restaurant() *kernel.UUID {
	return o.restaurantID
}

// RegisteredAt returns the registration timestamp.
func (o *Order) RegisteredAt() time.Time {
	return o.registeredAt
}

// CalledAt returns the time the customer was called on dispatch, nil
// before dispatch.
func (o *Order) CalledAt() *time.Time {
	return o.calledAt
}

// DeliveredAt returns the delivery timestamp, nil before completion.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Lines returns the order lines. The returned slice is a copy: lines are
// owned exclusively by the order and cannot be mutated from outside.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// SetComment sets the optional order comment.
func (o *Order) SetComment(comment string) {
	o.comment = comment
}

// ProductIDs returns the distinct product identities referenced by the
// order lines. Quantity is irrelevant to restaurant capability, so
// duplicates collapse.
func (o *Order) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.lines))
	ids := make([]kernel.UUID, 0, len(o.lines))
	for _, line := range o.lines {
		if _, ok := seen[line.ProductID()]; ok {
			continue
		}
		seen[line.ProductID()] = struct{}{}
		ids = append(ids, line.ProductID())
	}
	return ids
}

// TotalCost returns the sum of line costs (captured price times quantity).
func (o *Order) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Cost())
	}
	return total
}

// ResolveCoordinates memoizes the geocoded delivery coordinates onto the
// order. It may be called exactly once per order lifetime; a second call
// returns ErrCoordinatesAlreadyResolved regardless of the value, because
// re-resolution could silently reorder an already-reviewed ranking.
func (o *Order) ResolveCoordinates(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	if o.coordinates != nil {
		return ErrCoordinatesAlreadyResolved
	}

	o.coordinates = &point
	return nil
}

// AssignRestaurant dispatches the order to a restaurant. This is an
// explicit operator decision, never an automatic side effect of ranking.
// The order must be in NotProcessed status; on success the status becomes
// Cooking and the customer-call timestamp is recorded.
func (o *Order) AssignRestaurant(restaurantID kernel.UUID, calledAt time.Time) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cook()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.restaurantID = &restaurantID
	o.calledAt = &calledAt
	return nil
}

// StartDelivery moves a cooking order out for delivery.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete finishes the order lifecycle, recording the delivery timestamp.
func (o *Order) Complete(deliveredAt time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &deliveredAt
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setFirstname(firstname string) error {
	if firstname == "" {
		return ErrFirstnameIsRequired
	}

	o.firstname = firstname
	return nil
}

func (o *Order) setLastname(lastname string) error {
	if lastname == "" {
		return ErrLastnameIsRequired
	}

	o.lastname = lastname
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	o.phone = phone
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	o.address = address
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	o.payment = payment
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
