// AngelaMos | 2026
// handler.go

package diagnosis

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/RajathRavikumar/SmartAgri/internal/advisor"
	"github.com/RajathRavikumar/SmartAgri/internal/core"
	"github.com/RajathRavikumar/SmartAgri/internal/web"
)

// maxUploadBytes bounds plant photo uploads.
const maxUploadBytes = 10 << 20

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
		r.Get("/disease_detection", h.DiseasePage)
		r.Post("/upload", h.Upload)
		r.Get("/agrichat", h.ChatPage)
		r.Post("/chatbot", h.Chat)
	})
}

func (h *Handler) DiseasePage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "disease_detection", web.PageData{
		Title:     "Disease Detection",
		Languages: advisor.Languages,
	})
}

func (h *Handler) ChatPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "agri_chat", web.PageData{
		Title:     "AgriChat",
		Languages: advisor.Languages,
	})
}

type chatRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	core.WriteJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	req := chatRequest{Language: "none"}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Please enter a question")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "Please enter a question")
		return
	}
	if req.Language == "" {
		req.Language = "none"
	}

	result, err := h.service.Chat(r.Context(), req.Query, req.Language)
	if err != nil {
		h.logger.Error("chatbot request failed", "error", err)
		writeError(w, http.StatusInternalServerError,
			"Error processing request: "+err.Error())
		return
	}

	core.WriteJSON(w, http.StatusOK, result)
}

// Upload accepts either a plant photo or a symptom description and
// returns the diagnosis text.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest,
			"Please provide an image or a description")
		return
	}

	language := r.FormValue("language")
	if language == "" {
		language = "en"
	}

	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close() //nolint:errcheck // read-only file

		data, err := io.ReadAll(file)
		if err != nil || len(data) == 0 {
			writeError(w, http.StatusBadRequest,
				"Please provide an image or a description")
			return
		}

		mimeType := http.DetectContentType(data)
		result := h.service.DiagnoseImage(r.Context(), data, mimeType, language)
		core.WriteJSON(w, http.StatusOK,
			map[string]string{"disease_info": result})
		return
	}

	if description := strings.TrimSpace(
		r.FormValue("description"),
	); description != "" {
		result := h.service.DiagnoseDescription(
			r.Context(), description, language)
		core.WriteJSON(w, http.StatusOK,
			map[string]string{"disease_info": result})
		return
	}

	writeError(w, http.StatusBadRequest,
		"Please provide an image or a description")
}
