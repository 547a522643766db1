package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"starburger/cmd"
	adapterhttp "starburger/internal/adapters/in/http"
	"starburger/internal/adapters/out/postgres/menurepo"
	"starburger/internal/adapters/out/postgres/orderrepo"
	"starburger/internal/adapters/out/postgres/productrepo"
	"starburger/internal/adapters/out/postgres/restaurantrepo"
	"starburger/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}
	defer func() {
		_ = app.Close()
	}()

	jobManager := jobs.NewJobManager(
		app.CreateGeocodeRestaurantCommandHandler(),
		app.CreateRestaurantRepository(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		GeocoderAPIKey:         goDotEnvVariable("GEOCODER_API_KEY"),
		GeocoderBaseURL:        goDotEnvVariable("GEOCODER_BASE_URL"),
		GeocodeTimeout:         goDotEnvVariable("GEOCODE_TIMEOUT"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		DispatchBoardWorkers:   goDotEnvVariable("DISPATCH_BOARD_WORKERS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&restaurantrepo.RestaurantDTO{},
		&productrepo.ProductDTO{},
		&menurepo.MenuItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := adapterhttp.NewServer(
		app.CreateRegisterOrderCommandHandler(),
		app.CreateAssignRestaurantCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateGetDispatchBoardQueryHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
		app.CreateGetAvailableProductsQueryHandler(),
		app.CreateGetRestaurantsQueryHandler(),
		app.CreateGetAvailabilityMatrixQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
