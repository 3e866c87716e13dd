package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"weatherreport/internal/catalog"
	"weatherreport/internal/validation"
)

// Config holds the run configuration. Everything has a default; a config
// file is only needed to override the city catalog.
type Config struct {
	Cities []catalog.City

	WeatherAPIURL     string
	WeatherAPITimeout time.Duration

	OutputDir string
}

type fileConfig struct {
	Cities []struct {
		Name      string  `yaml:"name"`
		Latitude  float64 `yaml:"latitude"`
		Longitude float64 `yaml:"longitude"`
	} `yaml:"cities"`

	WeatherAPI struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"weather_api"`

	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

const defaultAPIURL = "https://api.open-meteo.com/v1/forecast"

// Load reads configuration from config/report.yaml (path overridable via
// REPORT_CONFIG). A missing file is not an error: the built-in catalog and
// defaults apply. Configured city names are normalized for display.
func Load() (*Config, error) {
	path := os.Getenv("REPORT_CONFIG")
	if path == "" {
		path = "config/report.yaml"
	}

	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg := &Config{}

	for _, c := range fc.Cities {
		cfg.Cities = append(cfg.Cities, catalog.City{
			Name:      catalog.Normalize(c.Name),
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		})
	}
	if len(cfg.Cities) == 0 {
		cfg.Cities = catalog.Default()
	}

	cfg.WeatherAPIURL = strings.TrimSpace(fc.WeatherAPI.URL)
	if cfg.WeatherAPIURL == "" {
		cfg.WeatherAPIURL = defaultAPIURL
	}
	cfg.WeatherAPITimeout = parseDuration(fc.WeatherAPI.Timeout, 10*time.Second)

	cfg.OutputDir = strings.TrimSpace(fc.Output.Dir)
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseDuration parses a duration string and returns defaultVal on empty
// string, parse error, or a non-positive result.
func parseDuration(s string, defaultVal time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

// validate checks every catalog entry before any request is issued, so a
// bad coordinate fails the run up front rather than mid-pipeline.
func validate(cfg *Config) error {
	for _, c := range cfg.Cities {
		if err := validation.ValidateCity(c); err != nil {
			return fmt.Errorf("city %q: %w", c.Name, err)
		}
	}
	return nil
}
