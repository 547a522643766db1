package jobs

import (
	"fmt"
	"log/slog"

	"starburger/internal/core/application/usecases/commands"
	"starburger/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	restaurantGeocodingJob *RestaurantGeocodingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	geocodeRestaurantHandler commands.GeocodeRestaurantCommandHandler,
	restaurantRepo ports.RestaurantRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		restaurantGeocodingJob: NewRestaurantGeocodingJob(geocodeRestaurantHandler, restaurantRepo, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.restaurantGeocodingJob.Start(); err != nil {
		return fmt.Errorf("failed to start restaurant geocoding job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.restaurantGeocodingJob.Stop()
}
