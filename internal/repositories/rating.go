package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

type RatingReadRepository struct {
	db *sqlx.DB
}

func NewRatingReadRepository(db *sqlx.DB) *RatingReadRepository {
	return &RatingReadRepository{db: db}
}

// ListByStall returns every ledger row for the stall. The aggregate
// recompute depends on this being the full set.
func (r *RatingReadRepository) ListByStall(ctx context.Context, stallID uuid.UUID) ([]models.RatingDB, error) {
	const query = `
		SELECT id, stall_id, user_id, user_name,
		       water_quality, masks, gloves, cleanliness, overall, created_at
		FROM ratings
		WHERE stall_id = $1
		ORDER BY created_at ASC
	`

	ratings := []models.RatingDB{}
	err := executor(ctx, r.db).SelectContext(ctx, &ratings, query, stallID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{stallID},
		"result", len(ratings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return ratings, nil
}

type RatingWriteRepository struct {
	db *sqlx.DB
}

func NewRatingWriteRepository(db *sqlx.DB) *RatingWriteRepository {
	return &RatingWriteRepository{db: db}
}

// Upsert inserts a rating or, when the (stall_id, user_id) pair already
// exists, replaces its category values, overall, and user name in
// place. The existing row keeps its id and original created_at.
func (r *RatingWriteRepository) Upsert(ctx context.Context, rating models.RatingDB) (models.RatingDB, error) {
	const query = `
		INSERT INTO ratings (id, stall_id, user_id, user_name,
		                     water_quality, masks, gloves, cleanliness, overall, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (stall_id, user_id) DO UPDATE
		SET user_name = EXCLUDED.user_name,
		    water_quality = EXCLUDED.water_quality,
		    masks = EXCLUDED.masks,
		    gloves = EXCLUDED.gloves,
		    cleanliness = EXCLUDED.cleanliness,
		    overall = EXCLUDED.overall
		RETURNING id, stall_id, user_id, user_name,
		          water_quality, masks, gloves, cleanliness, overall, created_at
	`
	args := []any{
		rating.RatingID, rating.StallID, rating.UserID, rating.UserName,
		rating.WaterQuality, rating.Masks, rating.Gloves, rating.Cleanliness,
		rating.Overall, rating.CreatedAt,
	}

	var saved models.RatingDB
	err := executor(ctx, r.db).GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rating.StallID, rating.UserID, rating.Overall},
		"result", saved.RatingID,
		"error", err,
	)

	if err != nil {
		return models.RatingDB{}, err
	}

	return saved, nil
}
