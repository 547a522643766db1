package cmd

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"starburger/internal/adapters/out/geo/yandex"
	"starburger/internal/adapters/out/kafka"
	"starburger/internal/adapters/out/postgres"
	"starburger/internal/core/application/usecases/commands"
	"starburger/internal/core/application/usecases/queries"
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	publisher  *kafka.OrderChangedPublisher
	logger     *slog.Logger

	geocodeTimeout time.Duration
	boardWorkers   int
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	geocoder, err := yandex.NewClient(config.GeocoderAPIKey, config.GeocoderBaseURL)
	if err != nil {
		return nil, err
	}

	publisher, err := kafka.NewOrderChangedPublisher(config.KafkaHost, config.KafkaOrderChangedTopic)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:       geocoder,
		publisher:      publisher,
		logger:         logger,
		geocodeTimeout: parseDuration(config.GeocodeTimeout, commands.DefaultGeocodeTimeout),
		boardWorkers:   parseInt(config.DispatchBoardWorkers, queries.DefaultBoardWorkers),
	}, nil
}

// Close releases resources with an open lifecycle, currently the Kafka writer.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateResolveOrderCoordinatesCommandHandler() commands.ResolveOrderCoordinatesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveOrderCoordinatesCommandHandler(f, c.geocoder, c.geocodeTimeout)
}

func (c *CompositionRoot) CreateAssignRestaurantCommandHandler() commands.AssignRestaurantCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRestaurantCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGeocodeRestaurantCommandHandler() commands.GeocodeRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGeocodeRestaurantCommandHandler(f, c.geocoder, c.geocodeTimeout)
}

func (c *CompositionRoot) CreateGetDispatchBoardQueryHandler() queries.GetDispatchBoardQueryHandler {
	// Reads go through repositories without an explicit transaction; the
	// conditional coordinate write inside the resolver runs in its own
	// unit of work per order.
	uow := c.uowFactory.Create()
	resolver := coordinateResolverAdapter{handler: c.CreateResolveOrderCoordinatesCommandHandler()}

	return queries.NewGetDispatchBoardQueryHandler(
		uow.OrderRepository(),
		uow.RestaurantRepository(),
		uow.MenuRepository(),
		resolver,
		c.boardWorkers,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableProductsQueryHandler() queries.GetAvailableProductsQueryHandler {
	return queries.NewGetAvailableProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailabilityMatrixQueryHandler() queries.GetAvailabilityMatrixQueryHandler {
	return queries.NewGetAvailabilityMatrixQueryHandler(c.gormDB)
}

// CreateRestaurantRepository returns a repository bound to the base
// connection, for read-only callers such as the geocoding job.
func (c *CompositionRoot) CreateRestaurantRepository() ports.RestaurantRepository {
	return c.uowFactory.Create().RestaurantRepository()
}

// coordinateResolverAdapter lets the dispatch board query drive the
// coordinate resolution command without depending on the commands package.
type coordinateResolverAdapter struct {
	handler commands.ResolveOrderCoordinatesCommandHandler
}

func (a coordinateResolverAdapter) ResolveOrderCoordinates(
	ctx context.Context,
	orderID kernel.UUID,
) (kernel.GeoPoint, error) {
	cmd, err := commands.NewResolveOrderCoordinatesCommand(orderID)
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	return a.handler.Handle(ctx, cmd)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
