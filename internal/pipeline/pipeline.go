package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weatherreport/internal/client"
	"weatherreport/internal/config"
	"weatherreport/internal/report"
)

// timestampFormat names the output artifacts: filesystem-safe and sortable.
const timestampFormat = "20060102_150405"

// Result describes one completed run.
type Result struct {
	RunID     string
	Timestamp string
	Rows      int
	Skipped   []string
	CSVPath   string
	ChartPath string
}

// Run executes the full report pipeline: fetch each catalog city in order,
// assemble the table with derived columns, write the CSV and render the
// chart. The timestamp is generated once up front so both artifacts name
// the same run.
//
// A failed fetch skips that city with a warning; the run only fails when
// every fetch fails, or when an artifact cannot be written.
func Run(ctx context.Context, cfg *config.Config, wc client.WeatherClient, logger *zap.Logger) (*Result, error) {
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))
	timestamp := time.Now().Format(timestampFormat)

	log.Info("run starting",
		zap.Int("cities", len(cfg.Cities)),
		zap.String("timestamp", timestamp))

	samples := make([]client.Sample, 0, len(cfg.Cities))
	var skipped []string
	for _, city := range cfg.Cities {
		sample, err := wc.CurrentConditions(ctx, city)
		if err != nil {
			log.Warn("fetch failed, skipping city",
				zap.String("city", city.Name),
				zap.Error(err))
			skipped = append(skipped, city.Name)
			continue
		}
		log.Debug("fetched current conditions",
			zap.String("city", city.Name),
			zap.Float64("temperature_c", sample.TemperatureC),
			zap.Float64("wind_speed_ms", sample.WindSpeedMS),
			zap.Float64("humidity_pct", sample.HumidityPct))
		samples = append(samples, sample)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("all %d city fetches failed", len(cfg.Cities))
	}

	table := report.Assemble(samples)

	csvPath, err := table.WriteCSV(cfg.OutputDir, timestamp)
	if err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	chartPath, err := table.RenderChart(cfg.OutputDir, timestamp)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	logRankings(log, table)
	logSummary(log, table.Summarize())

	log.Info("run complete",
		zap.Int("rows", table.Len()),
		zap.Int("skipped", len(skipped)),
		zap.String("csv", csvPath),
		zap.String("chart", chartPath))

	return &Result{
		RunID:     runID,
		Timestamp: timestamp,
		Rows:      table.Len(),
		Skipped:   skipped,
		CSVPath:   csvPath,
		ChartPath: chartPath,
	}, nil
}

func logRankings(log *zap.Logger, table report.Table) {
	byTemp := table.ByTemperature()
	byHum := table.ByHumidity()
	log.Info("rankings",
		zap.String("hottest", byTemp[0].City),
		zap.Float64("hottest_temperature_c", byTemp[0].TemperatureC),
		zap.String("coldest", byTemp[len(byTemp)-1].City),
		zap.Float64("coldest_temperature_c", byTemp[len(byTemp)-1].TemperatureC),
		zap.String("driest", byHum[0].City),
		zap.Float64("driest_humidity_pct", byHum[0].HumidityPct))

	warm := table.WarmCities(10)
	names := make([]string, len(warm))
	for i, r := range warm {
		names[i] = r.City
	}
	log.Info("warm cities", zap.Strings("above_10c", names))
}

func logSummary(log *zap.Logger, s report.Summary) {
	log.Info("summary statistics",
		zap.Int("count", s.TemperatureC.Count),
		zap.Float64("temperature_c_mean", s.TemperatureC.Mean),
		zap.Float64("temperature_c_stddev", s.TemperatureC.StdDev),
		zap.Float64("temperature_c_min", s.TemperatureC.Min),
		zap.Float64("temperature_c_max", s.TemperatureC.Max),
		zap.Float64("wind_speed_ms_mean", s.WindSpeedMS.Mean),
		zap.Float64("wind_speed_ms_max", s.WindSpeedMS.Max),
		zap.Float64("humidity_pct_mean", s.HumidityPct.Mean),
		zap.Float64("humidity_pct_max", s.HumidityPct.Max))
}
