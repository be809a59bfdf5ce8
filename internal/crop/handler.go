// AngelaMos | 2026
// handler.go

package crop

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
	"github.com/RajathRavikumar/SmartAgri/internal/middleware"
	"github.com/RajathRavikumar/SmartAgri/internal/weather"
	"github.com/RajathRavikumar/SmartAgri/internal/web"
)

type Handler struct {
	service  *Service
	renderer *web.Renderer
	logger   *slog.Logger
}

func NewHandler(
	service *Service,
	renderer *web.Renderer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		service:  service,
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
		r.Get("/cropgrowthanalysis", h.GrowthPage)
		r.Post("/analyze_crop_growth", h.AnalyzeGrowth)
		r.Get("/irrigation_plan", h.IrrigationPage)
		r.Post("/irrigation_plan", h.PlanIrrigation)
	})
}

func (h *Handler) GrowthPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "cropgrowthanalysis", web.PageData{
		Title: "Crop Growth Analysis",
	})
}

func (h *Handler) IrrigationPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "irrigation_plan", web.PageData{
		Title: "Irrigation Plan",
	})
}

// resultResponse wraps a saved record for the JSON endpoints.
type resultResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// writeError emits the flat error shape these endpoints use.
func writeError(w http.ResponseWriter, status int, message string) {
	core.WriteJSON(w, status, map[string]string{"error": message})
}

// requireFields returns the name of the first missing required field.
func requireFields(fields map[string]string, order ...string) (string, bool) {
	for _, name := range order {
		if fields[name] == "" {
			return name, false
		}
	}
	return "", true
}

func (h *Handler) handleFlowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		writeError(w, http.StatusBadRequest,
			"Invalid planting date format. Use DD-MM-YYYY or DD/MM/YYYY.")
	case errors.Is(err, weather.ErrInvalidLocation):
		writeError(w, http.StatusBadRequest, "Invalid location")
	default:
		h.logger.Error("crop flow failed", "error", err)
		writeError(w, http.StatusInternalServerError,
			"Error processing request: "+err.Error())
	}
}

func (h *Handler) AnalyzeGrowth(w http.ResponseWriter, r *http.Request) {
	var req GrowthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	if field, ok := requireFields(map[string]string{
		"crop_type": req.CropType,
		"location":  req.Location,
	}, "crop_type", "location"); !ok {
		writeError(w, http.StatusBadRequest, "Missing required field: "+field)
		return
	}

	email := middleware.GetUserEmail(r.Context())
	record, err := h.service.AnalyzeGrowth(r.Context(), email, req)
	if err != nil {
		h.handleFlowError(w, err)
		return
	}

	core.WriteJSON(w, http.StatusOK, resultResponse{
		Message: "Crop growth data saved successfully!",
		Data:    record,
	})
}

func (h *Handler) PlanIrrigation(w http.ResponseWriter, r *http.Request) {
	var req IrrigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	if field, ok := requireFields(map[string]string{
		"crop_type": req.CropType,
		"location":  req.Location,
	}, "crop_type", "location"); !ok {
		writeError(w, http.StatusBadRequest, "Missing required field: "+field)
		return
	}

	email := middleware.GetUserEmail(r.Context())
	plan, err := h.service.PlanIrrigation(r.Context(), email, req)
	if err != nil {
		h.handleFlowError(w, err)
		return
	}

	core.WriteJSON(w, http.StatusOK, resultResponse{
		Message: "Irrigation plan saved successfully!",
		Data:    plan,
	})
}
