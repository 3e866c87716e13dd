package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"weatherreport/internal/client"
	"weatherreport/internal/config"
	"weatherreport/internal/observability"
	"weatherreport/internal/pipeline"
)

func main() {
	// Optional .env for LOG_LEVEL / REPORT_CONFIG; absence is fine.
	_ = godotenv.Load()

	logger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	weatherClient, err := client.NewOpenMeteoClient(cfg.WeatherAPIURL, cfg.WeatherAPITimeout)
	if err != nil {
		logger.Fatal("weather client", zap.Error(err))
	}

	result, err := pipeline.Run(context.Background(), cfg, weatherClient, logger)
	if err != nil {
		logger.Fatal("report run failed", zap.Error(err))
	}

	logger.Info("report written",
		zap.Int("rows", result.Rows),
		zap.Strings("skipped", result.Skipped),
		zap.String("csv", result.CSVPath),
		zap.String("chart", result.ChartPath))
}
