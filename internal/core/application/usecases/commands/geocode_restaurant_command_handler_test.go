package commands_test

import (
	"testing"
	"time"

	"starburger/internal/core/application/usecases/commands"
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/restaurant"
	"starburger/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGeocodeRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewGeocodeRestaurantCommand(restaurantID)
	require.NoError(t, err)

	aggregate, err := restaurant.NewRestaurant(restaurantID, "Stellar Burgers")
	require.NoError(t, err)
	aggregate.SetAddress("1 Tverskaya st")

	resolved, err := kernel.NewGeoPoint(55.755826, 37.617300)
	require.NoError(t, err)

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	geocoder := new(MockGeocoder)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, restaurantID).Return(aggregate, nil).Once(),
		geocoder.On("Geocode", mock.Anything, "1 Tverskaya st").Return(resolved, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGeocodeRestaurantCommandHandler(factory, geocoder, time.Second)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, aggregate.HasCoordinates())
	uow.AssertExpectations(t)
	geocoder.AssertExpectations(t)
}

func TestGeocodeRestaurantCommandHandler_Handle_MissingAddress(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewGeocodeRestaurantCommand(restaurantID)
	require.NoError(t, err)

	aggregate, err := restaurant.NewRestaurant(restaurantID, "Stellar Burgers")
	require.NoError(t, err)

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, restaurantID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGeocodeRestaurantCommandHandler(factory, new(MockGeocoder), time.Second)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, restaurant.ErrAddressIsRequired)
	uow.AssertExpectations(t)
}

func TestGeocodeRestaurantCommandHandler_Handle_AlreadyGeocodedSkipsProvider(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewGeocodeRestaurantCommand(restaurantID)
	require.NoError(t, err)

	aggregate, err := restaurant.NewRestaurant(restaurantID, "Stellar Burgers")
	require.NoError(t, err)
	aggregate.SetAddress("1 Tverskaya st")
	point, err := kernel.NewGeoPoint(55.755826, 37.617300)
	require.NoError(t, err)
	require.NoError(t, aggregate.SetCoordinates(point))

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, restaurantID).Return(aggregate, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	geocoder := new(MockGeocoder)
	h := commands.NewGeocodeRestaurantCommandHandler(factory, geocoder, time.Second)
	require.NoError(t, h.Handle(ctx, cmd))
	geocoder.AssertExpectations(t)
}

func TestGeocodeRestaurantCommandHandler_Handle_ProviderUnavailable(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewGeocodeRestaurantCommand(restaurantID)
	require.NoError(t, err)

	aggregate, err := restaurant.NewRestaurant(restaurantID, "Stellar Burgers")
	require.NoError(t, err)
	aggregate.SetAddress("1 Tverskaya st")

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	geocoder := new(MockGeocoder)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, restaurantID).Return(aggregate, nil).Once(),
		geocoder.On("Geocode", mock.Anything, "1 Tverskaya st").
			Return(kernel.GeoPoint{}, ports.ErrGeocodingUnavailable).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGeocodeRestaurantCommandHandler(factory, geocoder, time.Second)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, ports.ErrGeocodingUnavailable)
	require.False(t, aggregate.HasCoordinates())
	uow.AssertExpectations(t)
}
