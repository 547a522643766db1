package commands

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/order"
	"starburger/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
	ErrFirstnameIsRequired = errors.New("firstname is required")
	ErrLastnameIsRequired  = errors.New("lastname is required")
	ErrPhoneIsRequired     = errors.New("phone is required")
	ErrAddressIsRequired   = errors.New("address is required")
	ErrItemsAreRequired    = errors.New("order must contain at least one item")
	ErrQuantityIsInvalid   = errors.New("item quantity must be greater than 0")
)

// RegisterOrderItem is one requested position of a new order: which product
// and how many. Prices are not part of the request; they are captured from
// the catalog at registration time.
type RegisterOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// RegisterOrderCommand represents a request to register a new customer order.
// Encapsulates customer contact details, the delivery address as free text,
// the payment method and the requested items.
//
// Example:
//
//	cmd, err := NewRegisterOrderCommand(kernel.NewUUID(),
//	    "Ivan", "Petrov", "+79990000000", "1 Tverskaya st",
//	    order.Cash,
//	    []RegisterOrderItem{{ProductID: productID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewRegisterOrderCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register order: %w", err)
//	}
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	firstname string
	lastname  string
	phone     string
	address   string
	comment   string
	payment   order.Payment
	items     []RegisterOrderItem

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, contact fields and address are not
// empty, the payment method is known, and every item has a positive quantity.
func NewRegisterOrderCommand(
	orderID kernel.UUID,
	firstname string,
	lastname string,
	phone string,
	address string,
	payment order.Payment,
	items []RegisterOrderItem,
) (RegisterOrderCommand, error) {
	command := RegisterOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setFirstname(firstname),
		command.setLastname(lastname),
		command.setPhone(phone),
		command.setAddress(address),
		command.setPayment(payment),
		command.setItems(items),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RegisterOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Firstname returns the customer's first name.
func (c RegisterOrderCommand) Firstname() string {
	return c.firstname
}

// Lastname returns the customer's last name.
func (c RegisterOrderCommand) Lastname() string {
	return c.lastname
}

// Phone returns the customer's contact phone.
func (c RegisterOrderCommand) Phone() string {
	return c.phone
}

// Address returns the delivery address as entered by the customer.
func (c RegisterOrderCommand) Address() string {
	return c.address
}

// Comment returns the optional customer comment.
func (c RegisterOrderCommand) Comment() string {
	return c.comment
}

// Payment returns the requested payment method.
func (c RegisterOrderCommand) Payment() order.Payment {
	return c.payment
}

// Items returns the requested order items.
func (c RegisterOrderCommand) Items() []RegisterOrderItem {
	items := make([]RegisterOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

// WithComment attaches an optional free-text comment to the command.
func (c RegisterOrderCommand) WithComment(comment string) RegisterOrderCommand {
	c.comment = comment
	return c
}

func (c *RegisterOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RegisterOrderCommand) setFirstname(firstname string) error {
	if firstname == "" {
		return ErrFirstnameIsRequired
	}

	c.firstname = firstname
	return nil
}

func (c *RegisterOrderCommand) setLastname(lastname string) error {
	if lastname == "" {
		return ErrLastnameIsRequired
	}

	c.lastname = lastname
	return nil
}

func (c *RegisterOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *RegisterOrderCommand) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}

func (c *RegisterOrderCommand) setItems(items []RegisterOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	// A product listed more than once collapses into one item with the
	// quantities summed; an order holds at most one line per product.
	merged := make([]RegisterOrderItem, 0, len(items))
	indexByProduct := make(map[kernel.UUID]int, len(items))
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}

		if i, ok := indexByProduct[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		indexByProduct[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	c.items = merged
	return nil
}
