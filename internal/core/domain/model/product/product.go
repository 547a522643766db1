// Package product contains the Product aggregate: independently owned
// reference data describing a sellable menu position. Products relate to
// restaurants only through menu items and to orders only through order
// lines, which capture the price at order time.
package product

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPriceIsNegative is returned when creating a product with a negative price.
	ErrPriceIsNegative = errs.NewValueIsInvalidError("price")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a sellable item. Price is the item's current price; order
// lines snapshot it at registration time, so changing it here never
// rewrites history.
type Product struct {
	id          kernel.UUID
	name        string
	category    string
	description string
	price       decimal.Decimal
	special     bool

	isConstructed bool
}

// NewProduct creates a Product with the required identity, name and price.
// Category, description and the special flag are optional attributes set
// through their mutators.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence with all
// attributes, bypassing none of the field validation.
func RestoreProduct(
	id kernel.UUID,
	name string,
	category string,
	description string,
	price decimal.Decimal,
	special bool,
) (*Product, error) {
	product, err := NewProduct(id, name, price)
	if err != nil {
		return nil, err
	}

	product.category = category
	product.description = description
	product.special = special
	return product, nil
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product identity.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the category name, empty when uncategorized.
func (p *Product) Category() string {
	return p.category
}

// Description returns the optional description text.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Special reports whether the product is flagged as a special offer.
func (p *Product) Special() bool {
	return p.special
}

// SetCategory sets the optional category name.
func (p *Product) SetCategory(category string) {
	p.category = category
}

// SetDescription sets the optional description text.
func (p *Product) SetDescription(description string) {
	p.description = description
}

// MarkSpecial flags the product as a special offer.
func (p *Product) MarkSpecial() {
	p.special = true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrPriceIsNegative
	}

	p.price = price
	return nil
}
