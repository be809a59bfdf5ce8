// AngelaMos | 2026
// handler.go

package session

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/RajathRavikumar/SmartAgri/internal/config"
	"github.com/RajathRavikumar/SmartAgri/internal/core"
	"github.com/RajathRavikumar/SmartAgri/internal/middleware"
	"github.com/RajathRavikumar/SmartAgri/internal/web"
)

type Handler struct {
	service   *Service
	renderer  *web.Renderer
	cookie    config.SessionConfig
	validator *validator.Validate
}

func NewHandler(
	service *Service,
	renderer *web.Renderer,
	cookie config.SessionConfig,
) *Handler {
	return &Handler{
		service:   service,
		renderer:  renderer,
		cookie:    cookie,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes wires the auth pages. Logout sits behind the guard; the
// login and register forms are the only unauthenticated surface.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	guard func(http.Handler) http.Handler,
) {
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(guard)
		r.Get("/logout", h.Logout)
	})
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "register", web.PageData{Title: "Register"})
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "login", web.PageData{Title: "Login"})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.Redirect(w, r, "/register", "error", "Invalid form submission.")
		return
	}

	form := RegisterForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.validator.Struct(form); err != nil {
		web.Redirect(w, r, "/register", "error",
			core.FormatValidationError(err))
		return
	}

	err := h.service.Register(r.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			web.Redirect(w, r, "/login", "warning",
				"Email already registered. Please log in.")
			return
		}
		web.Redirect(w, r, "/register", "error",
			"Registration failed. Please try again.")
		return
	}

	web.Redirect(w, r, "/login", "success",
		"Registration successful! Please log in.")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.Redirect(w, r, "/login", "error", "Invalid form submission.")
		return
	}

	form := LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.validator.Struct(form); err != nil {
		web.Redirect(w, r, "/login", "error",
			core.FormatValidationError(err))
		return
	}

	token, expiry, err := h.service.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.Redirect(w, r, "/login", "error",
				"Invalid email or password. Try again!")
			return
		}
		web.Redirect(w, r, "/login", "error",
			"Login failed. Please try again.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiry,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	web.Redirect(w, r, "/", "success", "Login successful!")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())

	if err := h.service.Logout(r.Context(), email); err != nil {
		core.InternalServerError(w, err)
		return
	}

	web.ClearSessionCookie(w, h.cookie.CookieName)
	web.Redirect(w, r, "/login", "info", "You have been logged out.")
}
