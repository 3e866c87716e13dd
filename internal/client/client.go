package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weatherreport/internal/catalog"
)

// WeatherClient fetches present-moment conditions for one city.
type WeatherClient interface {
	CurrentConditions(ctx context.Context, city catalog.City) (Sample, error)
}

// Sample is one city's raw fetched metrics, in the API's native units
// (Celsius, metres per second, percent).
type Sample struct {
	City         string
	TemperatureC float64
	WindSpeedMS  float64
	HumidityPct  float64
}

var (
	// ErrUpstreamFailure covers transport errors and non-2xx responses.
	ErrUpstreamFailure = errors.New("upstream failure")
	// ErrMalformedResponse covers responses missing the expected current-conditions fields.
	ErrMalformedResponse = errors.New("malformed response")
)

// currentFields is the set of current-conditions variables requested from
// Open-Meteo; wind is asked for in m/s rather than the km/h default.
const currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m"

// OpenMeteoClient queries the Open-Meteo forecast endpoint for current
// conditions. One request per city, no retries, no caching.
type OpenMeteoClient struct {
	apiURL  string
	timeout time.Duration
	client  *http.Client
}

func NewOpenMeteoClient(apiURL string, timeout time.Duration) (*OpenMeteoClient, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("API URL is required")
	}
	if _, err := url.Parse(apiURL); err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	return &OpenMeteoClient{
		apiURL:  apiURL,
		timeout: timeout,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// openMeteoResponse mirrors the subset of the forecast payload this program
// reads. Pointer fields distinguish a missing field from a zero value.
type openMeteoResponse struct {
	Current *struct {
		Temperature *float64 `json:"temperature_2m"`
		Humidity    *float64 `json:"relative_humidity_2m"`
		WindSpeed   *float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

func (c *OpenMeteoClient) CurrentConditions(ctx context.Context, city catalog.City) (Sample, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.buildRequest(reqCtx, city)
	if err != nil {
		return Sample{}, fmt.Errorf("%s: build request: %w", city.Name, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Sample{}, fmt.Errorf("%s: request timeout: %w", city.Name, err)
		}
		return Sample{}, fmt.Errorf("%s: %w: %v", city.Name, ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if err := c.handleErrorResponse(resp); err != nil {
		return Sample{}, fmt.Errorf("%s: %w", city.Name, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Sample{}, fmt.Errorf("%s: read response body: %w", city.Name, err)
	}

	var apiResp openMeteoResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return Sample{}, fmt.Errorf("%s: %w: %v", city.Name, ErrMalformedResponse, err)
	}

	return c.mapResponse(apiResp, city)
}

func (c *OpenMeteoClient) buildRequest(ctx context.Context, city catalog.City) (*http.Request, error) {
	baseURL, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(city.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(city.Longitude, 'f', -1, 64))
	params.Set("current", currentFields)
	params.Set("wind_speed_unit", "ms")
	baseURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *OpenMeteoClient) handleErrorResponse(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: HTTP %d", ErrUpstreamFailure, resp.StatusCode)
	}
	return nil
}

func (c *OpenMeteoClient) mapResponse(apiResp openMeteoResponse, city catalog.City) (Sample, error) {
	cur := apiResp.Current
	if cur == nil {
		return Sample{}, fmt.Errorf("%w: missing current conditions", ErrMalformedResponse)
	}
	if cur.Temperature == nil || cur.Humidity == nil || cur.WindSpeed == nil {
		return Sample{}, fmt.Errorf("%w: incomplete current conditions", ErrMalformedResponse)
	}

	return Sample{
		City:         city.Name,
		TemperatureC: *cur.Temperature,
		WindSpeedMS:  *cur.WindSpeed,
		HumidityPct:  *cur.Humidity,
	}, nil
}
