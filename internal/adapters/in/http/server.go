// Package http exposes the application use cases over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"starburger/internal/core/application/usecases/commands"
	"starburger/internal/core/application/usecases/queries"
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/order"
	"starburger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerOrderHandler    commands.RegisterOrderCommandHandler
	assignRestaurantHandler commands.AssignRestaurantCommandHandler
	advanceOrderHandler     commands.AdvanceOrderCommandHandler

	// Query handlers
	getDispatchBoardHandler      queries.GetDispatchBoardQueryHandler
	getUncompletedOrdersHandler  queries.GetUncompletedOrdersQueryHandler
	getAvailableProductsHandler  queries.GetAvailableProductsQueryHandler
	getRestaurantsHandler        queries.GetRestaurantsQueryHandler
	getAvailabilityMatrixHandler queries.GetAvailabilityMatrixQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerOrderHandler commands.RegisterOrderCommandHandler,
	assignRestaurantHandler commands.AssignRestaurantCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	getDispatchBoardHandler queries.GetDispatchBoardQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getAvailableProductsHandler queries.GetAvailableProductsQueryHandler,
	getRestaurantsHandler queries.GetRestaurantsQueryHandler,
	getAvailabilityMatrixHandler queries.GetAvailabilityMatrixQueryHandler,
) *Server {
	return &Server{
		registerOrderHandler:         registerOrderHandler,
		assignRestaurantHandler:      assignRestaurantHandler,
		advanceOrderHandler:          advanceOrderHandler,
		getDispatchBoardHandler:      getDispatchBoardHandler,
		getUncompletedOrdersHandler:  getUncompletedOrdersHandler,
		getAvailableProductsHandler:  getAvailableProductsHandler,
		getRestaurantsHandler:        getRestaurantsHandler,
		getAvailabilityMatrixHandler: getAvailabilityMatrixHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.RegisterOrder)
	api.GET("/orders/active", s.GetUncompletedOrders)
	api.POST("/orders/:orderId/assign", s.AssignRestaurant)
	api.POST("/orders/:orderId/advance", s.AdvanceOrder)
	api.GET("/products", s.GetProducts)
	api.GET("/restaurants", s.GetRestaurants)
	api.GET("/availability", s.GetAvailabilityMatrix)
	api.GET("/dispatch", s.GetDispatchBoard)
}

// Error is the JSON body returned on request failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one requested position of a new order.
type NewOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the request body for order registration.
type NewOrder struct {
	Firstname   string         `json:"firstname"`
	Lastname    string         `json:"lastname"`
	Phonenumber string         `json:"phonenumber"`
	Address     string         `json:"address"`
	Comment     string         `json:"comment"`
	Payment     string         `json:"payment"`
	Products    []NewOrderItem `json:"products"`
}

// OrderRegistered is the response body for a successful registration.
type OrderRegistered struct {
	ID string `json:"id"`
}

// RegisterOrder handles POST /api/v1/orders - registers a new customer order.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.RegisterOrderItem, 0, len(newOrder.Products))
	for _, product := range newOrder.Products {
		productID, err := kernel.UUIDFromString(product.ProductID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id: " + product.ProductID,
			})
		}
		items = append(items, commands.RegisterOrderItem{
			ProductID: productID,
			Quantity:  product.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterOrderCommand(
		orderID,
		newOrder.Firstname,
		newOrder.Lastname,
		newOrder.Phonenumber,
		newOrder.Address,
		parsePayment(newOrder.Payment),
		items,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}
	cmd = cmd.WithComment(newOrder.Comment)

	if handleErr := s.registerOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Unknown product in order",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register order",
		})
	}

	return ctx.JSON(http.StatusCreated, OrderRegistered{ID: orderID.String()})
}

// AssignOrder is the request body for restaurant assignment.
type AssignOrder struct {
	RestaurantID string `json:"restaurant_id"`
}

// AssignRestaurant handles POST /api/v1/orders/:orderId/assign - assigns a
// restaurant to an unprocessed order.
func (s *Server) AssignRestaurant(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var assign AssignOrder
	if err = ctx.Bind(&assign); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromString(assign.RestaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid restaurant id",
		})
	}

	cmd, err := commands.NewAssignRestaurantCommand(orderID, restaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment data: " + err.Error(),
		})
	}

	if handleErr := s.assignRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeCommandError(ctx, handleErr, "Failed to assign restaurant")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/:orderId/advance - moves an order
// one step forward through its lifecycle.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeCommandError(ctx, handleErr, "Failed to advance order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Product is one catalog entry offered by at least one restaurant.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Special     bool            `json:"special"`
}

// GetProducts handles GET /api/v1/products - retrieves the product catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAvailableProductsQuery()

	products, err := s.getAvailableProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]Product, len(products))
	for i, product := range products {
		response[i] = Product{
			ID:          product.ID.String(),
			Name:        product.Name,
			Category:    product.Category,
			Description: product.Description,
			Price:       product.Price,
			Special:     product.Special,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Restaurant is one restaurant row with its geocoding state.
type Restaurant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// GetRestaurants handles GET /api/v1/restaurants - retrieves all restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	query := queries.NewGetRestaurantsQuery()

	restaurants, err := s.getRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve restaurants",
		})
	}

	response := make([]Restaurant, len(restaurants))
	for i, restaurant := range restaurants {
		response[i] = Restaurant{
			ID:        restaurant.ID.String(),
			Name:      restaurant.Name,
			Address:   restaurant.Address,
			Latitude:  restaurant.Latitude,
			Longitude: restaurant.Longitude,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RestaurantAvailability lists which products one restaurant can prepare.
type RestaurantAvailability struct {
	RestaurantID      string   `json:"restaurant_id"`
	RestaurantName    string   `json:"restaurant_name"`
	AvailableProducts []string `json:"available_products"`
}

// GetAvailabilityMatrix handles GET /api/v1/availability - retrieves the
// per-restaurant product availability overview.
func (s *Server) GetAvailabilityMatrix(ctx echo.Context) error {
	query := queries.NewGetAvailabilityMatrixQuery()

	matrix, err := s.getAvailabilityMatrixHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve availability",
		})
	}

	response := make([]RestaurantAvailability, len(matrix))
	for i, entry := range matrix {
		products := make([]string, len(entry.AvailableProducts))
		for j, productID := range entry.AvailableProducts {
			products[j] = productID.String()
		}

		response[i] = RestaurantAvailability{
			RestaurantID:      entry.RestaurantID.String(),
			RestaurantName:    entry.RestaurantName,
			AvailableProducts: products,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UncompletedOrder is one in-progress order.
type UncompletedOrder struct {
	ID           string          `json:"id"`
	Firstname    string          `json:"firstname"`
	Lastname     string          `json:"lastname"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Status       string          `json:"status"`
	RegisteredAt time.Time       `json:"registered_at"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// GetUncompletedOrders handles GET /api/v1/orders/active - retrieves all
// orders that are not yet completed.
func (s *Server) GetUncompletedOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]UncompletedOrder, len(orders))
	for i, ord := range orders {
		response[i] = UncompletedOrder{
			ID:           ord.ID.String(),
			Firstname:    ord.Firstname,
			Lastname:     ord.Lastname,
			Phone:        ord.Phone,
			Address:      ord.Address,
			Status:       ord.Status,
			RegisteredAt: ord.RegisteredAt,
			TotalCost:    ord.TotalCost,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DispatchCandidate is one ranked restaurant suggestion.
type DispatchCandidate struct {
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	DistanceKm   float64 `json:"distance_km"`
}

// DispatchRow is one order on the dispatch board.
type DispatchRow struct {
	OrderID             string              `json:"order_id"`
	Customer            string              `json:"customer"`
	Phone               string              `json:"phone"`
	Address             string              `json:"address"`
	Status              string              `json:"status"`
	TotalCost           decimal.Decimal     `json:"total_cost"`
	Failure             string              `json:"failure,omitempty"`
	Candidates          []DispatchCandidate `json:"candidates"`
	ExcludedRestaurants int                 `json:"excluded_restaurants"`
}

// GetDispatchBoard handles GET /api/v1/dispatch - builds the dispatch board.
func (s *Server) GetDispatchBoard(ctx echo.Context) error {
	query := queries.NewGetDispatchBoardQuery()

	board, err := s.getDispatchBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build dispatch board",
		})
	}

	response := make([]DispatchRow, len(board))
	for i, row := range board {
		candidates := make([]DispatchCandidate, len(row.Candidates))
		for j, candidate := range row.Candidates {
			candidates[j] = DispatchCandidate{
				RestaurantID: candidate.RestaurantID.String(),
				Name:         candidate.Name,
				DistanceKm:   candidate.DistanceKm,
			}
		}

		response[i] = DispatchRow{
			OrderID:             row.OrderID.String(),
			Customer:            row.Customer,
			Phone:               row.Phone,
			Address:             row.Address,
			Status:              row.Status,
			TotalCost:           row.TotalCost,
			Failure:             string(row.Failure),
			Candidates:          candidates,
			ExcludedRestaurants: row.ExcludedRestaurants,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) writeCommandError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrRestaurantCannotPrepareOrder),
		errors.Is(err, commands.ErrOrderCannotBeAdvanced),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func parsePayment(payment string) order.Payment {
	switch payment {
	case "cash", "Cash":
		return order.Cash
	case "electronic", "Electronic":
		return order.Electronic
	default:
		return order.PaymentUnknown
	}
}
