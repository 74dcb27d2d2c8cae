package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// maxReviews caps a single stall's review listing.
const maxReviews = 1000

type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// ListByStall returns the stall's reviews, newest first.
func (r *ReviewReadRepository) ListByStall(ctx context.Context, stallID uuid.UUID) ([]models.ReviewDB, error) {
	const query = `
		SELECT id, stall_id, user_id, user_name, comment, created_at
		FROM reviews
		WHERE stall_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	reviews := []models.ReviewDB{}
	err := executor(ctx, r.db).SelectContext(ctx, &reviews, query, stallID, maxReviews)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{stallID},
		"result", len(reviews),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return reviews, nil
}

type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a new review row.
func (r *ReviewWriteRepository) Save(ctx context.Context, review models.ReviewDB) error {
	const query = `
		INSERT INTO reviews (id, stall_id, user_id, user_name, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{
		review.ReviewID, review.StallID, review.UserID,
		review.UserName, review.Comment, review.CreatedAt,
	}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{review.ReviewID, review.StallID, review.UserID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
