package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"serviceordering/cmd"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; the environment alone may carry the values.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		OrderBasePath:      envOrDefault("ORDER_BASE_PATH", "/serviceOrder"),
		HubBasePath:        envOrDefault("HUB_BASE_PATH", "/hub"),
		StoreDriver:        envOrDefault("STORE_DRIVER", cmd.StoreDriverMemory),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		StoreStatsSchedule: envOrDefault("STORE_STATS_SCHEDULE", "0 * * * * *"),
	}

	if raw := os.Getenv("NOTIFICATION_DELIVERY_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid NOTIFICATION_DELIVERY_TIMEOUT %q: %v", raw, err)
		}
		config.DeliveryTimeout = timeout
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
