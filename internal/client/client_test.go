package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weatherreport/internal/catalog"
)

var berlin = catalog.City{Name: "Berlin", Latitude: 52.52, Longitude: 13.405}

func TestNewOpenMeteoClient(t *testing.T) {
	tests := []struct {
		name    string
		apiURL  string
		wantErr bool
	}{
		{
			name:    "empty URL",
			apiURL:  "",
			wantErr: true,
		},
		{
			name:    "valid URL",
			apiURL:  "https://api.open-meteo.com/v1/forecast",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewOpenMeteoClient(tt.apiURL, 2*time.Second)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewOpenMeteoClient() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewOpenMeteoClient() unexpected error: %v", err)
			}
			if c == nil {
				t.Fatal("NewOpenMeteoClient() expected client, got nil")
			}
		})
	}
}

func TestOpenMeteoClient_CurrentConditions_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET, got %s", r.Method)
		}
		q := r.URL.Query()
		if got := q.Get("latitude"); got != "52.52" {
			t.Errorf("latitude = %q, want %q", got, "52.52")
		}
		if got := q.Get("longitude"); got != "13.405" {
			t.Errorf("longitude = %q, want %q", got, "13.405")
		}
		if got := q.Get("current"); !strings.Contains(got, "temperature_2m") || !strings.Contains(got, "relative_humidity_2m") || !strings.Contains(got, "wind_speed_10m") {
			t.Errorf("current = %q, missing expected fields", got)
		}
		if got := q.Get("wind_speed_unit"); got != "ms" {
			t.Errorf("wind_speed_unit = %q, want %q", got, "ms")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":20.0,"relative_humidity_2m":60,"wind_speed_10m":5.0}}`))
	}))
	defer server.Close()

	c, err := NewOpenMeteoClient(server.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() error = %v", err)
	}

	got, err := c.CurrentConditions(context.Background(), berlin)
	if err != nil {
		t.Fatalf("CurrentConditions() error = %v", err)
	}

	if got.City != "Berlin" {
		t.Errorf("City = %q, want %q", got.City, "Berlin")
	}
	if got.TemperatureC != 20.0 {
		t.Errorf("TemperatureC = %f, want %f", got.TemperatureC, 20.0)
	}
	if got.WindSpeedMS != 5.0 {
		t.Errorf("WindSpeedMS = %f, want %f", got.WindSpeedMS, 5.0)
	}
	if got.HumidityPct != 60.0 {
		t.Errorf("HumidityPct = %f, want %f", got.HumidityPct, 60.0)
	}
}

func TestOpenMeteoClient_CurrentConditions_UpstreamFailure(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable}
	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			c, err := NewOpenMeteoClient(server.URL, 2*time.Second)
			if err != nil {
				t.Fatalf("NewOpenMeteoClient() error = %v", err)
			}

			_, err = c.CurrentConditions(context.Background(), berlin)
			if err == nil {
				t.Fatal("CurrentConditions() expected error, got nil")
			}
			if !errors.Is(err, ErrUpstreamFailure) {
				t.Errorf("error = %v, want ErrUpstreamFailure", err)
			}
			if !strings.Contains(err.Error(), "Berlin") {
				t.Errorf("error %q does not identify the city", err)
			}
		})
	}
}

func TestOpenMeteoClient_CurrentConditions_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "not JSON",
			body: "not json at all",
		},
		{
			name: "missing current object",
			body: `{"latitude":52.52,"longitude":13.405}`,
		},
		{
			name: "missing temperature field",
			body: `{"current":{"relative_humidity_2m":60,"wind_speed_10m":5.0}}`,
		},
		{
			name: "missing wind field",
			body: `{"current":{"temperature_2m":20.0,"relative_humidity_2m":60}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c, err := NewOpenMeteoClient(server.URL, 2*time.Second)
			if err != nil {
				t.Fatalf("NewOpenMeteoClient() error = %v", err)
			}

			_, err = c.CurrentConditions(context.Background(), berlin)
			if err == nil {
				t.Fatal("CurrentConditions() expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestOpenMeteoClient_CurrentConditions_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":20.0,"relative_humidity_2m":60,"wind_speed_10m":5.0}}`))
	}))
	defer server.Close()

	c, err := NewOpenMeteoClient(server.URL, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() error = %v", err)
	}

	_, err = c.CurrentConditions(context.Background(), berlin)
	if err == nil {
		t.Fatal("CurrentConditions() expected timeout error, got nil")
	}
}
