package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"mealorder/cmd"
	httpserver "mealorder/internal/adapters/in/http"
	"mealorder/internal/adapters/out/postgres/coderepo"
	"mealorder/internal/adapters/out/postgres/draftrepo"
	"mealorder/internal/adapters/out/postgres/orderrepo"
	"mealorder/internal/adapters/out/postgres/userrepo"
	"mealorder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDraftIdleWindow = 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreatePurgeIdleDraftsCommandHandler(),
		app.Clock(),
		draftIdleWindow(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:            goDotEnvVariable("REDIS_ADDR"),
		GeoServiceURL:        goDotEnvVariable("GEO_SERVICE_URL"),
		TimeZone:             goDotEnvVariable("TIME_ZONE"),
		DraftIdleWindowHours: goDotEnvVariable("DRAFT_IDLE_WINDOW_HOURS"),
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

func draftIdleWindow(config cmd.Config) time.Duration {
	if config.DraftIdleWindowHours == "" {
		return defaultDraftIdleWindow
	}

	hours, err := strconv.Atoi(config.DraftIdleWindowHours)
	if err != nil || hours <= 0 {
		return defaultDraftIdleWindow
	}
	return time.Duration(hours) * time.Hour
}

func openDatabase(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&draftrepo.DraftDTO{},
		&userrepo.UserDTO{},
		&coderepo.ActivationCodeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, config cmd.Config) {
	server := httpserver.NewServer(
		app.CreateProcessMessageCommandHandler(config),
		app.CreateAcquireOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateResetOrderCommandHandler(),
		app.CreateReleaseOrderLockCommandHandler(),
		app.CreateCountAvailableOrdersQueryHandler(),
		app.CreateGetDailyQuotaQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
