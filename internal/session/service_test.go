// AngelaMos | 2026
// service_test.go

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
	"github.com/RajathRavikumar/SmartAgri/internal/user"
)

type stubRepo struct {
	sessions map[string]*Session
	deleted  []string
}

func newStubRepo() *stubRepo {
	return &stubRepo{sessions: make(map[string]*Session)}
}

func (r *stubRepo) Upsert(_ context.Context, s *Session) error {
	s.CreatedAt = time.Now()
	r.sessions[s.TokenHash] = s
	return nil
}

func (r *stubRepo) FindByTokenHash(
	_ context.Context,
	tokenHash string,
) (*Session, error) {
	if s, ok := r.sessions[tokenHash]; ok {
		return s, nil
	}
	return nil, core.ErrNotFound
}

func (r *stubRepo) DeleteByEmail(_ context.Context, email string) error {
	r.deleted = append(r.deleted, email)
	for hash, s := range r.sessions {
		if s.Email == email {
			delete(r.sessions, hash)
		}
	}
	return nil
}

func (r *stubRepo) DeleteExpired(_ context.Context) (int64, error) {
	var purged int64
	for hash, s := range r.sessions {
		if s.IsExpired() {
			delete(r.sessions, hash)
			purged++
		}
	}
	return purged, nil
}

type stubUsers struct {
	byEmail map[string]*user.User
}

func (u *stubUsers) GetByEmail(
	_ context.Context,
	email string,
) (*user.User, error) {
	if usr, ok := u.byEmail[email]; ok {
		return usr, nil
	}
	return nil, core.ErrNotFound
}

func (u *stubUsers) Create(
	_ context.Context,
	email, passwordHash, name string,
) (*user.User, error) {
	if _, ok := u.byEmail[email]; ok {
		return nil, core.ErrDuplicateKey
	}
	usr := &user.User{Email: email, PasswordHash: passwordHash, Name: name}
	u.byEmail[email] = usr
	return usr, nil
}

func testService(t *testing.T, password string) (*Service, *stubRepo) {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	users := &stubUsers{byEmail: map[string]*user.User{
		"farmer@example.com": {
			Email:        "farmer@example.com",
			PasswordHash: hash,
			Name:         "Farmer",
		},
	}}

	repo := newStubRepo()
	return NewService(repo, users, 24*time.Hour), repo
}

func TestLoginIssuesValidatableSession(t *testing.T) {
	svc, _ := testService(t, "correct horse battery")
	ctx := context.Background()

	token, expiry, err := svc.Login(ctx, "farmer@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiry, time.Minute)

	email, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "farmer@example.com", email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testService(t, "correct horse battery")

	_, _, err := svc.Login(
		context.Background(), "farmer@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := testService(t, "correct horse battery")

	_, _, err := svc.Login(
		context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	svc, _ := testService(t, "correct horse battery")
	ctx := context.Background()

	first, _, err := svc.Login(ctx, "farmer@example.com", "correct horse battery")
	require.NoError(t, err)

	second, _, err := svc.Login(ctx, "farmer@example.com", "correct horse battery")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	email, err := svc.Validate(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "farmer@example.com", email)
}

func TestValidateUnknownToken(t *testing.T) {
	svc, _ := testService(t, "correct horse battery")

	_, err := svc.Validate(context.Background(), "not-a-real-token")
	assert.ErrorIs(t, err, core.ErrSessionExpired)
}

func TestValidateExpiredSessionIsDeleted(t *testing.T) {
	svc, repo := testService(t, "correct horse battery")
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "farmer@example.com", "correct horse battery")
	require.NoError(t, err)

	for _, s := range repo.sessions {
		s.Expiry = time.Now().Add(-time.Minute)
	}

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, core.ErrSessionExpired)
	assert.Contains(t, repo.deleted, "farmer@example.com")

	// The record is gone; the same cookie now fails on lookup.
	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, core.ErrSessionExpired)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _ := testService(t, "correct horse battery")
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "farmer@example.com", "correct horse battery")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "farmer@example.com"))

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, core.ErrSessionExpired)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := testService(t, "correct horse battery")
	ctx := context.Background()

	err := svc.Register(ctx, "Farmer", "farmer@example.com", "some password")
	assert.ErrorIs(t, err, ErrEmailExists)

	err = svc.Register(ctx, "New", "new@example.com", "some password")
	assert.NoError(t, err)
}
