package menurepo_test

import (
	"context"
	"testing"
	"time"

	"starburger/internal/adapters/out/postgres/menurepo"
	"starburger/internal/adapters/out/postgres/productrepo"
	"starburger/internal/adapters/out/postgres/restaurantrepo"
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/menu"
	"starburger/internal/core/domain/model/product"
	"starburger/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type MenuRepositoryIntegrationTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	repository     *menurepo.GormMenuRepository
	restaurantRepo *restaurantrepo.GormRestaurantRepository
	productRepo    *productrepo.GormProductRepository
}

func (suite *MenuRepositoryIntegrationTestSuite) SetupSuite() {
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
}

func (suite *MenuRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items, restaurants, products").Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	suite.repository = menurepo.NewGormMenuRepository(suite.db)
	suite.restaurantRepo = restaurantrepo.NewGormRestaurantRepository(suite.db, tracker)
	suite.productRepo = productrepo.NewGormProductRepository(suite.db, tracker)
}

func (suite *MenuRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuRepositoryIntegrationTestSuite) addRestaurant(name string) *restaurant.Restaurant {
	aggregate, err := restaurant.NewRestaurant(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *MenuRepositoryIntegrationTestSuite) addProduct(name string) *product.Product {
	aggregate, err := product.NewProduct(kernel.NewUUID(), name, decimal.NewFromInt(100))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *MenuRepositoryIntegrationTestSuite) upsert(restaurantID, productID kernel.UUID, available bool) {
	item, err := menu.NewMenuItem(restaurantID, productID, available)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(context.Background(), item))
}

func (suite *MenuRepositoryIntegrationTestSuite) TestUpsert_InsertsAndUpdatesInPlace() {
	ctx := context.Background()
	diner := suite.addRestaurant("Alpha Diner")
	burger := suite.addProduct("Burger")

	suite.upsert(diner.ID(), burger.ID(), true)

	items, err := suite.repository.GetByRestaurant(ctx, diner.ID())
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.True(items[0].Available())

	suite.upsert(diner.ID(), burger.ID(), false)

	items, err = suite.repository.GetByRestaurant(ctx, diner.ID())
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.False(items[0].Available(), "second upsert must update the row, not duplicate it")
}

func (suite *MenuRepositoryIntegrationTestSuite) TestGetByRestaurant_FiltersOtherRestaurants() {
	ctx := context.Background()
	first := suite.addRestaurant("Alpha Diner")
	second := suite.addRestaurant("Zulu Grill")
	burger := suite.addProduct("Burger")

	suite.upsert(first.ID(), burger.ID(), true)
	suite.upsert(second.ID(), burger.ID(), true)

	items, err := suite.repository.GetByRestaurant(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.True(items[0].RestaurantID().IsEqual(first.ID()))
}

func (suite *MenuRepositoryIntegrationTestSuite) TestDeletingRestaurantRemovesItsMenuRows() {
	ctx := context.Background()
	doomed := suite.addRestaurant("Doomed Diner")
	survivor := suite.addRestaurant("Survivor Grill")
	burger := suite.addProduct("Burger")

	suite.upsert(doomed.ID(), burger.ID(), true)
	suite.upsert(survivor.ID(), burger.ID(), true)

	suite.Require().NoError(
		suite.db.Exec("DELETE FROM restaurants WHERE id = ?", doomed.ID().Bytes()).Error)

	items, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.True(items[0].RestaurantID().IsEqual(survivor.ID()))
}

func (suite *MenuRepositoryIntegrationTestSuite) TestDeletingProductRemovesItsMenuRows() {
	ctx := context.Background()
	diner := suite.addRestaurant("Alpha Diner")
	doomed := suite.addProduct("Doomed Burger")
	survivor := suite.addProduct("Survivor Fries")

	suite.upsert(diner.ID(), doomed.ID(), true)
	suite.upsert(diner.ID(), survivor.ID(), true)

	suite.Require().NoError(
		suite.db.Exec("DELETE FROM products WHERE id = ?", doomed.ID().Bytes()).Error)

	items, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.True(items[0].ProductID().IsEqual(survivor.ID()))
}

func TestMenuRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuRepositoryIntegrationTestSuite))
}
