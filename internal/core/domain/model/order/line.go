package order

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/errs"
	"starburger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrQuantityIsInvalid is returned when a line is created with a
	// quantity below one.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity")
	// ErrLinePriceIsNegative is returned when a line is created with a
	// negative captured price.
	ErrLinePriceIsNegative = errs.NewValueIsInvalidError("price")
	// ErrLineIsNotConstructed is returned when using an improperly
	// initialized Line.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one position of an order: a product reference, a quantity, and
// the price captured at order time. The captured price is a historical
// fact decoupled from the product's current price.
type Line struct {
	productID kernel.UUID
	quantity  int
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLine creates a Line. Quantity must be at least one and the captured
// price non-negative.
func NewLine(productID kernel.UUID, quantity int, price decimal.Decimal) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, ErrQuantityIsInvalid
	}
	if price.IsNegative() {
		return Line{}, ErrLinePriceIsNegative
	}

	return Line{
		productID: productID,
		quantity:  quantity,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the referenced product identity.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Price returns the per-unit price captured at order time.
func (l Line) Price() decimal.Decimal {
	return l.price
}

// Cost returns price multiplied by quantity.
func (l Line) Cost() decimal.Decimal {
	return l.price.Mul(decimal.NewFromInt(int64(l.quantity)))
}
