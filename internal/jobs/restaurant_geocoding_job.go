package jobs

import (
	"context"
	"errors"
	"log/slog"

	"starburger/internal/core/application/usecases/commands"
	"starburger/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// RestaurantGeocodingJob periodically backfills coordinates for restaurants
// that have an address but were never geocoded. Runs every minute so a newly
// added restaurant becomes rankable without operator action.
type RestaurantGeocodingJob struct {
	handler        commands.GeocodeRestaurantCommandHandler
	restaurantRepo ports.RestaurantRepository
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewRestaurantGeocodingJob creates a new job for geocoding restaurants.
func NewRestaurantGeocodingJob(
	handler commands.GeocodeRestaurantCommandHandler,
	restaurantRepo ports.RestaurantRepository,
	logger *slog.Logger,
) *RestaurantGeocodingJob {
	return &RestaurantGeocodingJob{
		handler:        handler,
		restaurantRepo: restaurantRepo,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "restaurant_geocoding_job"),
	}
}

// Start begins the geocoding job to run every minute.
func (j *RestaurantGeocodingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		restaurants, err := j.restaurantRepo.GetAllWithoutCoordinates(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Restaurant geocoding job failed to list restaurants", "error", err)
			return
		}

		for _, restaurant := range restaurants {
			cmd, cmdErr := commands.NewGeocodeRestaurantCommand(restaurant.ID())
			if cmdErr != nil {
				j.logger.ErrorContext(ctx, "Restaurant geocoding job failed to build command",
					"restaurantId", restaurant.ID().String(), "error", cmdErr)
				continue
			}

			if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
				// An unknown address is a data problem on one restaurant,
				// not a job failure. The rest of the batch continues either way.
				if errors.Is(handleErr, ports.ErrAddressNotFound) {
					j.logger.WarnContext(ctx, "Restaurant address is not geocodable",
						"restaurantId", restaurant.ID().String(), "address", restaurant.Address())
					continue
				}
				j.logger.ErrorContext(ctx, "Restaurant geocoding job failed",
					"restaurantId", restaurant.ID().String(), "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Restaurant geocoding job started (running every minute)")
	return nil
}

// Stop stops the geocoding job.
func (j *RestaurantGeocodingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Restaurant geocoding job stopped")
}
