// AngelaMos | 2026
// client_test.go

package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajathRavikumar/SmartAgri/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.WeatherConfig{
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, srv.URL)
}

func forecastEntryJSON(ts int64, temp float64) string {
	return fmt.Sprintf(`{
		"dt": %d,
		"main": {"temp": %.1f, "humidity": 60},
		"wind": {"speed": 3.2},
		"weather": [{"description": "light rain", "icon": "10d"}]
	}`, ts, temp)
}

func TestFiveDayDedupesPerDayAscending(t *testing.T) {
	day := time.Date(2026, 8, 31, 6, 0, 0, 0, time.Local)

	// Three entries on day one, two on day two: one forecast per day,
	// keeping the first entry of each.
	body := fmt.Sprintf(
		`{"city": {"name": "Bengaluru"}, "list": [%s, %s, %s, %s, %s]}`,
		forecastEntryJSON(day.Unix(), 24.0),
		forecastEntryJSON(day.Add(3*time.Hour).Unix(), 27.0),
		forecastEntryJSON(day.Add(6*time.Hour).Unix(), 29.0),
		forecastEntryJSON(day.Add(24*time.Hour).Unix(), 22.0),
		forecastEntryJSON(day.Add(27*time.Hour).Unix(), 25.0),
	)

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		fmt.Fprint(w, body)
	})

	forecast, err := client.FiveDay(context.Background(), 12.97, 77.59)
	require.NoError(t, err)

	assert.Equal(t, "Bengaluru", forecast.Location)
	require.Len(t, forecast.Forecast, 2)

	assert.Equal(t, day.Format("2006-01-02"), forecast.Forecast[0].Date)
	assert.Equal(t, 24.0, forecast.Forecast[0].Temperature)
	assert.Equal(t,
		day.Add(24*time.Hour).Format("2006-01-02"),
		forecast.Forecast[1].Date,
	)
	assert.Equal(t, 22.0, forecast.Forecast[1].Temperature)

	assert.Equal(t,
		"https://openweathermap.org/img/wn/10d@2x.png",
		forecast.Forecast[0].Icon,
	)
}

func TestFiveDayCapsAtSevenDays(t *testing.T) {
	day := time.Date(2026, 9, 1, 6, 0, 0, 0, time.Local)

	entries := ""
	for i := 0; i < 10; i++ {
		if i > 0 {
			entries += ","
		}
		entries += forecastEntryJSON(day.AddDate(0, 0, i).Unix(), 20.0)
	}
	body := fmt.Sprintf(`{"city": {"name": "Bengaluru"}, "list": [%s]}`, entries)

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	})

	forecast, err := client.FiveDay(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	assert.Len(t, forecast.Forecast, 7)
}

func TestFiveDayUpstreamError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"cod": 401, "message": "Invalid API key"}`)
	})

	_, err := client.FiveDay(context.Background(), 12.97, 77.59)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestCurrentReturnsSnapshot(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Bengaluru", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{
			"main": {"temp": 26.5, "humidity": 55},
			"weather": [{"description": "scattered clouds", "icon": "03d"}]
		}`)
	})

	snapshot, err := client.Current(context.Background(), "Bengaluru")
	require.NoError(t, err)

	assert.Equal(t, 26.5, snapshot.Temperature)
	assert.Equal(t, 55.0, snapshot.Humidity)
	assert.Equal(t, "scattered clouds", snapshot.Conditions)
}

func TestCurrentUnknownLocation(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"cod": "404", "message": "city not found"}`)
	})

	_, err := client.Current(context.Background(), "Nowheresville")
	assert.ErrorIs(t, err, ErrInvalidLocation)
}
