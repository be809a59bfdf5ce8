// AngelaMos | 2026
// handler.go

package weather

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
	"github.com/RajathRavikumar/SmartAgri/internal/web"
)

type Handler struct {
	client   *Client
	renderer *web.Renderer
	logger   *slog.Logger
}

func NewHandler(
	client *Client,
	renderer *web.Renderer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		client:   client,
		renderer: renderer,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	guard func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(guard)
		r.Get("/weather_forecast", h.Page)
		r.Post("/weather", h.Forecast)
	})
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "weather", web.PageData{
		Title: "Weather Forecast",
	})
}

type forecastRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Forecast looks up the multi-day forecast for browser-supplied
// coordinates.
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req forecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.WriteJSON(w, http.StatusBadRequest,
			map[string]string{"error": "No data provided"})
		return
	}

	if req.Latitude == 0 || req.Longitude == 0 {
		core.WriteJSON(w, http.StatusBadRequest,
			map[string]string{"error": "Latitude and Longitude are required"})
		return
	}

	forecast, err := h.client.FiveDay(r.Context(), req.Latitude, req.Longitude)
	if err != nil {
		h.logger.Error("forecast lookup failed", "error", err)
		core.WriteJSON(w, http.StatusInternalServerError,
			map[string]string{"error": "Error fetching weather: " + err.Error()})
		return
	}

	core.WriteJSON(w, http.StatusOK, forecast)
}
