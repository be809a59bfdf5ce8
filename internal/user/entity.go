// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User is a credential record. Created at registration, read at login,
// never updated or deleted in-app.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
}
