// AngelaMos | 2026
// client.go

// Package weather is a thin client for the OpenWeather current and
// 5-day/3-hour forecast endpoints.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/RajathRavikumar/SmartAgri/internal/config"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

var ErrInvalidLocation = errors.New("invalid location")

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against baseURL, or the public OpenWeather
// API when baseURL is empty.
func NewClient(cfg config.WeatherConfig, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Snapshot is the current weather at a named location, embedded into
// crop-growth and irrigation records.
type Snapshot struct {
	Temperature float64
	Humidity    float64
	Conditions  string
}

type DayForecast struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

type Forecast struct {
	Location string        `json:"location"`
	Forecast []DayForecast `json:"forecast"`
}

type conditionPayload struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainPayload struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type currentPayload struct {
	Main    *mainPayload       `json:"main"`
	Weather []conditionPayload `json:"weather"`
	Message string             `json:"message"`
}

type forecastEntry struct {
	Dt      int64              `json:"dt"`
	Main    mainPayload        `json:"main"`
	Weather []conditionPayload `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type forecastPayload struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List    []forecastEntry `json:"list"`
	Message any             `json:"message"`
}

// Current fetches the current weather for a city name. A payload without
// a main block means OpenWeather did not recognize the location.
func (c *Client) Current(
	ctx context.Context,
	location string,
) (*Snapshot, error) {
	query := url.Values{
		"q":     {location},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	var payload currentPayload
	if err := c.get(ctx, "/weather", query, &payload); err != nil {
		return nil, err
	}

	if payload.Main == nil {
		return nil, fmt.Errorf("current weather for %q: %w",
			location, ErrInvalidLocation)
	}

	conditions := ""
	if len(payload.Weather) > 0 {
		conditions = payload.Weather[0].Description
	}

	return &Snapshot{
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		Conditions:  conditions,
	}, nil
}

// maxForecastDays caps the deduplicated forecast; the free tier delivers
// five distinct days, so seven is never exceeded in practice.
const maxForecastDays = 7

// FiveDay fetches the 3-hour-interval forecast and collapses it to the
// first entry of each calendar day, in ascending date order.
func (c *Client) FiveDay(
	ctx context.Context,
	lat, lon float64,
) (*Forecast, error) {
	query := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	var payload forecastPayload
	if err := c.get(ctx, "/forecast", query, &payload); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, maxForecastDays)
	days := make([]DayForecast, 0, maxForecastDays)

	for _, entry := range payload.List {
		date := time.Unix(entry.Dt, 0).Format("2006-01-02")
		if _, ok := seen[date]; ok {
			continue
		}
		if len(days) >= maxForecastDays {
			break
		}
		seen[date] = struct{}{}

		day := DayForecast{
			Date:        date,
			Temperature: entry.Main.Temp,
			Humidity:    entry.Main.Humidity,
			WindSpeed:   entry.Wind.Speed,
		}
		if len(entry.Weather) > 0 {
			day.Description = entry.Weather[0].Description
			day.Icon = fmt.Sprintf(
				"https://openweathermap.org/img/wn/%s@2x.png",
				entry.Weather[0].Icon,
			)
		}

		days = append(days, day)
	}

	return &Forecast{
		Location: payload.City.Name,
		Forecast: days,
	}, nil
}

func (c *Client) get(
	ctx context.Context,
	path string,
	query url.Values,
	dest any,
) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+path+"?"+query.Encode(),
		nil,
	)
	if err != nil {
		return fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"weather api status %d: %s",
			resp.StatusCode,
			upstreamMessage(dest),
		)
	}

	return nil
}

func upstreamMessage(payload any) string {
	switch p := payload.(type) {
	case *currentPayload:
		if p.Message != "" {
			return p.Message
		}
	case *forecastPayload:
		if s, ok := p.Message.(string); ok && s != "" {
			return s
		}
	}
	return "unknown error"
}
