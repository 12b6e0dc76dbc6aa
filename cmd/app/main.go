package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"orders/cmd"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(context.Background(), configs, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	probeJob := app.CreateStoreProbeJob()
	if err := probeJob.Start(); err != nil {
		log.Fatalf("Failed to start store probe job: %v", err)
	}
	defer probeJob.Stop()

	startWebServer(app, probeJob, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		StoreDriver:    envOrDefault("STORE_DRIVER", cmd.StoreDriverDynamo),
		DynamoTable:    envOrDefault("DYNAMO_TABLE", "orders"),
		AWSRegion:      envOrDefault("AWS_REGION", "us-east-1"),
		DynamoEndpoint: os.Getenv("DYNAMO_ENDPOINT"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, probeJob *jobs.StoreProbeJob, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	healthHandler := app.CreateHealthHandler(probeJob)
	e.GET("/health", healthHandler.Handle)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
