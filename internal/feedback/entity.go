// AngelaMos | 2026
// entity.go

// Package feedback stores user ratings and comments and assembles the
// recent-feedback list shown on the home page.
package feedback

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Rating    int       `db:"rating"`
	Timestamp time.Time `db:"timestamp"`
}

type Comment struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Comment   string    `db:"comment"`
	Timestamp time.Time `db:"timestamp"`
}

// Item is one row of the home-page feedback list: a recent comment
// joined with its author's latest rating, if any.
type Item struct {
	Email     string    `db:"email"`
	Comment   string    `db:"comment"`
	Rating    *int      `db:"rating"`
	Timestamp time.Time `db:"timestamp"`
}
