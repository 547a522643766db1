package queries_test

import (
	"context"
	"testing"
	"time"

	"starburger/internal/adapters/out/postgres/restaurantrepo"
	"starburger/internal/core/application/usecases/queries"
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetRestaurantsQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	handler        queries.GetRestaurantsQueryHandler
	restaurantRepo *restaurantrepo.GormRestaurantRepository
}

func (suite *GetRestaurantsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&restaurantrepo.RestaurantDTO{}))

	suite.handler = queries.NewGetRestaurantsQueryHandler(db)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurants").Error)
	suite.restaurantRepo = restaurantrepo.NewGormRestaurantRepository(suite.db, newRelaxedTracker())
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetRestaurantsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_ReflectsGeocodingState() {
	ctx := context.Background()

	geocoded, err := restaurant.NewRestaurant(kernel.NewUUID(), "Alpha Diner")
	suite.Require().NoError(err)
	geocoded.SetAddress("1 Tverskaya st")
	point, err := kernel.NewGeoPoint(55.755826, 37.617300)
	suite.Require().NoError(err)
	suite.Require().NoError(geocoded.SetCoordinates(point))

	pending, err := restaurant.NewRestaurant(kernel.NewUUID(), "Zulu Grill")
	suite.Require().NoError(err)
	pending.SetAddress("2 Arbat st")

	for _, aggregate := range []*restaurant.Restaurant{geocoded, pending} {
		suite.Require().NoError(suite.restaurantRepo.Add(ctx, aggregate))
	}

	result, err := suite.handler.Handle(ctx, queries.NewGetRestaurantsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(geocoded.ID()), "restaurants must be sorted by name")
	suite.Equal("Alpha Diner", result[0].Name)
	suite.Equal("1 Tverskaya st", result[0].Address)
	suite.Require().NotNil(result[0].Latitude)
	suite.Require().NotNil(result[0].Longitude)
	suite.InDelta(55.755826, *result[0].Latitude, 1e-6)
	suite.InDelta(37.617300, *result[0].Longitude, 1e-6)

	suite.True(result[1].ID.IsEqual(pending.ID()))
	suite.Nil(result[1].Latitude)
	suite.Nil(result[1].Longitude)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetRestaurantsQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetRestaurantsQuery constructor")
}

func TestGetRestaurantsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRestaurantsQueryHandlerTestSuite))
}
