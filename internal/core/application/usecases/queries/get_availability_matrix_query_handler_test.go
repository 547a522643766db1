package queries_test

import (
	"context"
	"testing"
	"time"

	"starburger/internal/adapters/out/postgres/menurepo"
	"starburger/internal/adapters/out/postgres/productrepo"
	"starburger/internal/adapters/out/postgres/restaurantrepo"
	"starburger/internal/core/application/usecases/queries"
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/menu"
	"starburger/internal/core/domain/model/product"
	"starburger/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAvailabilityMatrixQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	handler        queries.GetAvailabilityMatrixQueryHandler
	restaurantRepo *restaurantrepo.GormRestaurantRepository
	productRepo    *productrepo.GormProductRepository
	menuRepo       *menurepo.GormMenuRepository
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&productrepo.ProductDTO{},
		&menurepo.MenuItemDTO{},
	))

	suite.handler = queries.NewGetAvailabilityMatrixQueryHandler(db)
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items, restaurants, products").Error)

	suite.restaurantRepo = restaurantrepo.NewGormRestaurantRepository(suite.db, newRelaxedTracker())
	suite.productRepo = productrepo.NewGormProductRepository(suite.db, newRelaxedTracker())
	suite.menuRepo = menurepo.NewGormMenuRepository(suite.db)
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) addRestaurant(name string) *restaurant.Restaurant {
	aggregate, err := restaurant.NewRestaurant(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) addProduct(name string) *product.Product {
	aggregate, err := product.NewProduct(kernel.NewUUID(), name, decimal.NewFromInt(100))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) upsertMenuItem(
	restaurantID, productID kernel.UUID, available bool,
) {
	item, err := menu.NewMenuItem(restaurantID, productID, available)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.Upsert(context.Background(), item))
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyMatrix() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailabilityMatrixQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) TestHandle_GroupsAvailableProductsPerRestaurant() {
	zulu := suite.addRestaurant("Zulu Grill")
	alpha := suite.addRestaurant("Alpha Diner")
	burger := suite.addProduct("Burger")
	fries := suite.addProduct("Fries")

	suite.upsertMenuItem(alpha.ID(), burger.ID(), true)
	suite.upsertMenuItem(alpha.ID(), fries.ID(), true)
	suite.upsertMenuItem(zulu.ID(), burger.ID(), true)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailabilityMatrixQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].RestaurantID.IsEqual(alpha.ID()), "restaurants must be sorted by name")
	suite.Equal("Alpha Diner", result[0].RestaurantName)
	suite.Len(result[0].AvailableProducts, 2)

	suite.True(result[1].RestaurantID.IsEqual(zulu.ID()))
	suite.Require().Len(result[1].AvailableProducts, 1)
	suite.True(result[1].AvailableProducts[0].IsEqual(burger.ID()))
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) TestHandle_UnavailableRowsAreExcluded() {
	diner := suite.addRestaurant("Alpha Diner")
	burger := suite.addProduct("Burger")
	fries := suite.addProduct("Fries")

	suite.upsertMenuItem(diner.ID(), burger.ID(), true)
	suite.upsertMenuItem(diner.ID(), fries.ID(), false)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailabilityMatrixQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].AvailableProducts, 1)
	suite.True(result[0].AvailableProducts[0].IsEqual(burger.ID()))
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) TestHandle_RestaurantWithNothingAvailableIsAbsent() {
	diner := suite.addRestaurant("Alpha Diner")
	burger := suite.addProduct("Burger")

	suite.upsertMenuItem(diner.ID(), burger.ID(), false)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailabilityMatrixQuery())

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetAvailabilityMatrixQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetAvailabilityMatrixQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAvailabilityMatrixQuery constructor")
}

func TestGetAvailabilityMatrixQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailabilityMatrixQueryHandlerTestSuite))
}
