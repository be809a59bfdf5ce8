// AngelaMos | 2026
// handler.go

package feedback

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
	"github.com/RajathRavikumar/SmartAgri/internal/middleware"
	"github.com/RajathRavikumar/SmartAgri/internal/web"
)

// recentLimit is how many comments the home page shows.
const recentLimit = 3

type Handler struct {
	repo     Repository
	renderer *web.Renderer
}

func NewHandler(repo Repository, renderer *web.Renderer) *Handler {
	return &Handler{repo: repo, renderer: renderer}
}

// RegisterRoutes wires the home page and the feedback submission
// endpoints. All three sit behind the session guard supplied by the
// caller.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	guard func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(guard)
		r.Get("/", h.HomePage)
		r.Post("/submit_rating", h.SubmitRating)
		r.Post("/submit_comment", h.SubmitComment)
	})
}

// HomePage renders the dashboard with the latest feedback entries.
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.RecentFeedback(r.Context(), recentLimit)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	h.renderer.Render(w, r, "index", web.PageData{
		Title: "SmartAgri",
		Data:  items,
	})
}

// submissionResponse is the flat shape both feedback endpoints return,
// on success and on validation failure alike.
type submissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeSubmission(
	w http.ResponseWriter,
	status int,
	success bool,
	message string,
) {
	core.WriteJSON(w, status, submissionResponse{
		Success: success,
		Message: message,
	})
}

func (h *Handler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating int `json:"rating"`
	}

	// A non-integer rating fails JSON decoding and counts as invalid.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Rating < 1 || req.Rating > 5 {
		writeSubmission(w, http.StatusBadRequest, false, "Invalid rating")
		return
	}

	email := middleware.GetUserEmail(r.Context())
	if err := h.repo.InsertRating(r.Context(), email, req.Rating); err != nil {
		core.InternalServerError(w, err)
		return
	}

	writeSubmission(w, http.StatusOK, true, "Rating submitted successfully")
}

func (h *Handler) SubmitComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Comment string `json:"comment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Comment == "" || len(req.Comment) > 500 {
		writeSubmission(w, http.StatusBadRequest, false, "Invalid comment")
		return
	}

	email := middleware.GetUserEmail(r.Context())
	if err := h.repo.InsertComment(r.Context(), email, req.Comment); err != nil {
		core.InternalServerError(w, err)
		return
	}

	writeSubmission(w, http.StatusOK, true, "Comment submitted successfully")
}
