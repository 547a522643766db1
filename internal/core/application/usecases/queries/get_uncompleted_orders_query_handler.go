package queries

import (
	"context"
	"time"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves in-progress orders straight
// from the database. The total cost is aggregated over the order lines in
// SQL rather than by rehydrating aggregates.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for in-progress order queries.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by registration time, then
// by order ID for a stable output.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.firstname,
			o.lastname,
			o.phone,
			o.address,
			o.status,
			o.registered_at,
			COALESCE(SUM(l.price * l.quantity), 0) AS total_cost
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status != ?
		GROUP BY o.id, o.firstname, o.lastname, o.phone, o.address, o.status, o.registered_at
		ORDER BY o.registered_at, o.id
	`, order.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUncompletedOrdersQueryResponse
		var id uuid.UUID
		var status int
		var registeredAt time.Time
		var totalCost decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.Firstname,
			&resp.Lastname,
			&resp.Phone,
			&resp.Address,
			&status,
			&registeredAt,
			&totalCost,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.RegisteredAt = registeredAt
		resp.TotalCost = totalCost
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
