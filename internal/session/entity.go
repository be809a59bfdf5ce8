// AngelaMos | 2026
// entity.go

package session

import (
	"time"
)

// Session is the server-side proof of authentication, keyed by the
// owner's email. One row per user: a fresh login overwrites the token
// and pushes the expiry forward.
type Session struct {
	Email     string    `db:"email"`
	TokenHash string    `db:"token_hash"`
	Expiry    time.Time `db:"expiry"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.Expiry)
}
