// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Coordinates are nullable: both columns are NULL until the delivery address
// has been geocoded, and the pair is written together.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Firstname    string
	Lastname     string
	Phone        string
	Address      string
	Comment      string
	Latitude     *float64 `gorm:"type:decimal(9,6)"`
	Longitude    *float64 `gorm:"type:decimal(9,6)"`
	Status       int      `gorm:"index"`
	Payment      int
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
	RegisteredAt time.Time
	CalledAt     *time.Time
	DeliveredAt  *time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line. Price is the catalog price
// captured at registration time, not a reference to the product table.
type OrderLineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity  int
	Price     decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var restaurantID *uuid.UUID
	if id := aggregate.Restaurant(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}

	var latitude, longitude *float64
	if point := aggregate.Coordinates(); point != nil {
		lat, lon := point.Latitude(), point.Longitude()
		latitude, longitude = &lat, &lon
	}

	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			Price:     line.Price(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Firstname:    aggregate.Firstname(),
		Lastname:     aggregate.Lastname(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		Comment:      aggregate.Comment(),
		Latitude:     latitude,
		Longitude:    longitude,
		Status:       int(aggregate.Status()),
		Payment:      int(aggregate.Payment()),
		RestaurantID: restaurantID,
		RegisteredAt: aggregate.RegisteredAt(),
		CalledAt:     aggregate.CalledAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Lines:        lineDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, restaurantErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restaurantErr != nil {
			return nil, restaurantErr
		}
		restaurantID = &rID
	}

	var coordinates *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		coordinates = &point
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Quantity, lineDTO.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.Firstname,
		dto.Lastname,
		dto.Phone,
		dto.Address,
		dto.Comment,
		coordinates,
		order.Status(dto.Status),
		order.Payment(dto.Payment),
		restaurantID,
		dto.RegisteredAt,
		dto.CalledAt,
		dto.DeliveredAt,
		lines,
	)
}
