// AngelaMos | 2026
// service.go

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
	"github.com/RajathRavikumar/SmartAgri/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Create(
		ctx context.Context,
		email, passwordHash, name string,
	) (*user.User, error)
}

type Service struct {
	repo  Repository
	users UserProvider
	ttl   time.Duration
}

func NewService(
	repo Repository,
	users UserProvider,
	ttl time.Duration,
) *Service {
	return &Service{
		repo:  repo,
		users: users,
		ttl:   ttl,
	}
}

func (s *Service) Register(
	ctx context.Context,
	name, email, password string,
) error {
	passwordHash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.users.Create(ctx, email, passwordHash, name); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies the credentials and issues a fresh session. The session
// row is upserted by email, so any previous token for the same user stops
// working immediately.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (string, time.Time, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(password, nil)
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, fmt.Errorf("get user: %w", err)
	}

	valid, _, err := core.VerifyPasswordTimingSafe(password, &u.PasswordHash)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, err := core.GenerateSessionToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate session token: %w", err)
	}

	expiry := time.Now().Add(s.ttl)

	if err := s.repo.Upsert(ctx, &Session{
		Email:     u.Email,
		TokenHash: core.HashToken(token),
		Expiry:    expiry,
	}); err != nil {
		return "", time.Time{}, fmt.Errorf("store session: %w", err)
	}

	return token, expiry, nil
}

// Logout removes every session record for the email. The cookie becomes
// useless on the next request regardless of its contents.
func (s *Service) Logout(ctx context.Context, email string) error {
	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Validate resolves a cookie token to its owner. An expired record is
// deleted on detection, so repeated requests with a stale cookie settle
// into the plain not-found path.
func (s *Service) Validate(
	ctx context.Context,
	token string,
) (string, error) {
	stored, err := s.repo.FindByTokenHash(ctx, core.HashToken(token))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return "", fmt.Errorf("validate session: %w", core.ErrSessionExpired)
		}
		return "", fmt.Errorf("validate session: %w", err)
	}

	if stored.IsExpired() {
		//nolint:errcheck // best-effort cleanup; the deny below is what matters
		_ = s.repo.DeleteByEmail(ctx, stored.Email)
		return "", fmt.Errorf("validate session: %w", core.ErrSessionExpired)
	}

	return stored.Email, nil
}

// PurgeExpired is called periodically from main to keep the table small.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx)
}
