package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

const stallColumns = `
	id, name, description, address, city, area, photos,
	water_quality_score, masks_score, gloves_score, cleanliness_score,
	overall_score, rating_count, owner_id, created_at
`

// StallFilter narrows a stall listing. All filters are case-insensitive
// substring matches; zero values mean no constraint.
type StallFilter struct {
	City   string
	Area   string
	Search string // matched against name OR description OR city OR area
	Limit  int
}

type StallReadRepository struct {
	db *sqlx.DB
}

func NewStallReadRepository(db *sqlx.DB) *StallReadRepository {
	return &StallReadRepository{db: db}
}

// GetByID returns the stall with the given id, or nil when absent.
func (r *StallReadRepository) GetByID(ctx context.Context, stallID uuid.UUID) (*models.StallDB, error) {
	query := `SELECT ` + stallColumns + ` FROM stalls WHERE id = $1 LIMIT 1`

	var stall models.StallDB
	err := executor(ctx, r.db).GetContext(ctx, &stall, query, stallID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{stallID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &stall, nil
}

// List returns stalls matching the filter, ordered by overall score
// descending with creation time ascending as the tie-break.
func (r *StallReadRepository) List(ctx context.Context, filter StallFilter) ([]models.StallDB, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.City != "" {
		conds = append(conds, "city ILIKE "+arg("%"+filter.City+"%"))
	}
	if filter.Area != "" {
		conds = append(conds, "area ILIKE "+arg("%"+filter.Area+"%"))
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE %[1]s OR description ILIKE %[1]s OR city ILIKE %[1]s OR area ILIKE %[1]s)", p))
	}

	query := `SELECT ` + stallColumns + ` FROM stalls`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY overall_score DESC, created_at ASC"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	stalls := []models.StallDB{}
	err := executor(ctx, r.db).SelectContext(ctx, &stalls, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(stalls),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return stalls, nil
}

type StallWriteRepository struct {
	db *sqlx.DB
}

func NewStallWriteRepository(db *sqlx.DB) *StallWriteRepository {
	return &StallWriteRepository{db: db}
}

// Save inserts a new stall row with zeroed derived fields.
func (r *StallWriteRepository) Save(ctx context.Context, stall models.StallDB) error {
	const query = `
		INSERT INTO stalls (id, name, description, address, city, area, photos, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		stall.StallID, stall.Name, stall.Description, stall.Address,
		stall.City, stall.Area, stall.Photos, stall.OwnerID, stall.CreatedAt,
	}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{stall.StallID, stall.Name, stall.City, stall.Area},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateScores writes the derived aggregate fields onto a stall. These
// columns are owned by the recompute and are never set anywhere else.
func (r *StallWriteRepository) UpdateScores(ctx context.Context, stallID uuid.UUID, scores models.StallScores) error {
	const query = `
		UPDATE stalls
		SET water_quality_score = $2,
		    masks_score = $3,
		    gloves_score = $4,
		    cleanliness_score = $5,
		    overall_score = $6,
		    rating_count = $7
		WHERE id = $1
	`
	args := []any{
		stallID, scores.WaterQuality, scores.Masks, scores.Gloves,
		scores.Cleanliness, scores.Overall, scores.RatingCount,
	}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
