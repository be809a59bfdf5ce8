// AngelaMos | 2026
// session.go

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
)

const UserEmailKey contextKey = "user_email"

// SessionValidator resolves a cookie token to the owning user's email.
// The server-side record is authoritative: a missing or expired record
// denies the request no matter what the cookie claims.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// Decision is the outcome of the session check for one request.
type Decision struct {
	Allowed    bool
	Email      string
	RedirectTo string
	Message    string
}

// DenyWriter renders a Deny decision. JSON endpoints answer 401;
// page endpoints clear the cookie and redirect to the login form.
type DenyWriter func(w http.ResponseWriter, r *http.Request, d Decision)

func SessionGuard(
	validator SessionValidator,
	cookieName string,
	deny DenyWriter,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := check(r, validator, cookieName)
			if !d.Allowed {
				deny(w, r, d)
				return
			}

			ctx := context.WithValue(r.Context(), UserEmailKey, d.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func check(
	r *http.Request,
	validator SessionValidator,
	cookieName string,
) Decision {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return Decision{
			RedirectTo: "/login",
			Message:    "Please log in to access this page.",
		}
	}

	email, err := validator.Validate(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, core.ErrSessionExpired) ||
			errors.Is(err, core.ErrUnauthorized) {
			return Decision{
				RedirectTo: "/login",
				Message:    "Your session has expired. Please log in again.",
			}
		}
		return Decision{
			RedirectTo: "/login",
			Message:    "Please log in to access this page.",
		}
	}

	return Decision{Allowed: true, Email: email}
}

// DenyWithJSON answers API calls whose session was rejected.
func DenyWithJSON(w http.ResponseWriter, r *http.Request, d Decision) {
	core.JSONError(w, core.SessionExpiredError())
}

func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserEmail(ctx) != ""
}
