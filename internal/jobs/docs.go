// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(geocodeRestaurantHandler, restaurantRepo, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// RestaurantGeocodingJob runs every minute and backfills coordinates for
// restaurants that have an address but no stored latitude/longitude. It
// treats an unknown address as a per-restaurant data problem: the restaurant
// is logged and skipped, and the rest of the batch continues.
package jobs
