// AngelaMos | 2026
// render.go

package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/RajathRavikumar/SmartAgri/internal/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

type PageData struct {
	Title     string
	Email     string
	Flash     *Flash
	Languages map[string]string
	Data      any
}

func (rd *Renderer) Render(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	data PageData,
) {
	if data.Flash == nil {
		data.Flash = PopFlash(w, r)
	}
	if data.Email == "" {
		data.Email = middleware.GetUserEmail(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := rd.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Redirect sets a flash and sends the client to target.
func Redirect(
	w http.ResponseWriter,
	r *http.Request,
	target, category, message string,
) {
	if message != "" {
		SetFlash(w, category, message)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// ClearSessionCookie expires the client-side session cookie.
func ClearSessionCookie(w http.ResponseWriter, cookieName string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// DenyWithRedirect renders a session-guard denial for page routes:
// drop the stale cookie, flash the reason, bounce to login.
func DenyWithRedirect(cookieName string) middleware.DenyWriter {
	return func(w http.ResponseWriter, r *http.Request, d middleware.Decision) {
		ClearSessionCookie(w, cookieName)
		Redirect(w, r, d.RedirectTo, "error", d.Message)
	}
}
