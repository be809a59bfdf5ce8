// AngelaMos | 2026
// repository.go

package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
)

type Repository interface {
	InsertRating(ctx context.Context, email string, rating int) error
	InsertComment(ctx context.Context, email, comment string) error
	RecentFeedback(ctx context.Context, limit int) ([]Item, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) InsertRating(
	ctx context.Context,
	email string,
	rating int,
) error {
	query := `
		INSERT INTO ratings (id, email, rating)
		VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(
		ctx, query, uuid.New(), email, rating,
	); err != nil {
		return fmt.Errorf("insert rating: %w", err)
	}
	return nil
}

func (r *repository) InsertComment(
	ctx context.Context,
	email, comment string,
) error {
	query := `
		INSERT INTO comments (id, email, comment)
		VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(
		ctx, query, uuid.New(), email, comment,
	); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// RecentFeedback returns the newest comments, each joined with its
// author's most recent rating.
func (r *repository) RecentFeedback(
	ctx context.Context,
	limit int,
) ([]Item, error) {
	query := `
		SELECT c.email, c.comment, c.timestamp, lr.rating
		FROM comments c
		LEFT JOIN LATERAL (
			SELECT rating
			FROM ratings
			WHERE email = c.email
			ORDER BY timestamp DESC
			LIMIT 1
		) lr ON true
		ORDER BY c.timestamp DESC
		LIMIT $1`

	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, fmt.Errorf("select recent feedback: %w", err)
	}
	return items, nil
}
