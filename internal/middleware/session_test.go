// AngelaMos | 2026
// session_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
)

type stubValidator struct {
	email string
	err   error
}

func (v *stubValidator) Validate(
	_ context.Context,
	_ string,
) (string, error) {
	return v.email, v.err
}

func runGuard(
	t *testing.T,
	validator SessionValidator,
	cookie *http.Cookie,
) (Decision, bool, string) {
	t.Helper()

	var (
		denied    Decision
		wasDenied bool
		seenEmail string
	)

	deny := func(w http.ResponseWriter, r *http.Request, d Decision) {
		denied = d
		wasDenied = true
		w.WriteHeader(http.StatusUnauthorized)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenEmail = GetUserEmail(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	guard := SessionGuard(validator, "smartagri_session", deny)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	guard(next).ServeHTTP(rec, req)

	return denied, wasDenied, seenEmail
}

func TestSessionGuardMissingCookie(t *testing.T) {
	denied, wasDenied, _ := runGuard(t, &stubValidator{}, nil)

	require.True(t, wasDenied)
	assert.Equal(t, "/login", denied.RedirectTo)
	assert.Equal(t, "Please log in to access this page.", denied.Message)
}

func TestSessionGuardExpiredSession(t *testing.T) {
	validator := &stubValidator{err: core.ErrSessionExpired}
	cookie := &http.Cookie{Name: "smartagri_session", Value: "stale-token"}

	denied, wasDenied, _ := runGuard(t, validator, cookie)

	require.True(t, wasDenied)
	assert.Equal(t, "/login", denied.RedirectTo)
	assert.Equal(t,
		"Your session has expired. Please log in again.", denied.Message)
}

func TestSessionGuardValidSessionInjectsEmail(t *testing.T) {
	validator := &stubValidator{email: "farmer@example.com"}
	cookie := &http.Cookie{Name: "smartagri_session", Value: "good-token"}

	_, wasDenied, seenEmail := runGuard(t, validator, cookie)

	assert.False(t, wasDenied)
	assert.Equal(t, "farmer@example.com", seenEmail)
}

func TestGetUserEmailEmptyContext(t *testing.T) {
	assert.Empty(t, GetUserEmail(context.Background()))
	assert.False(t, IsAuthenticated(context.Background()))
}
