package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Photos is a list of photo references stored as a JSONB column.
type Photos []string

// Value implements driver.Valuer.
func (p Photos) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(p))
}

// Scan implements sql.Scanner.
func (p *Photos) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	default:
		return errors.New("unsupported photos column type")
	}
}

// StallDB represents a food stall record in the database.
// The five score fields and rating_count are derived from the rating
// ledger and are only ever written by the aggregate recompute.
type StallDB struct {
	StallID           uuid.UUID `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Description       string    `json:"description" db:"description"`
	Address           string    `json:"address" db:"address"`
	City              string    `json:"city" db:"city"`
	Area              string    `json:"area" db:"area"`
	Photos            Photos    `json:"photos" db:"photos"`
	WaterQualityScore float64   `json:"water_quality_score" db:"water_quality_score"`
	MasksScore        float64   `json:"masks_score" db:"masks_score"`
	GlovesScore       float64   `json:"gloves_score" db:"gloves_score"`
	CleanlinessScore  float64   `json:"cleanliness_score" db:"cleanliness_score"`
	OverallScore      float64   `json:"overall_score" db:"overall_score"`
	RatingCount       int       `json:"rating_count" db:"rating_count"`
	OwnerID           uuid.UUID `json:"owner_id" db:"owner_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// StallScores carries the derived aggregate fields written back onto a
// stall after a recompute.
type StallScores struct {
	WaterQuality float64
	Masks        float64
	Gloves       float64
	Cleanliness  float64
	Overall      float64
	RatingCount  int
}
