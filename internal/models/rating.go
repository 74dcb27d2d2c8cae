package models

import (
	"time"

	"github.com/google/uuid"
)

// RatingDB represents one user's hygiene rating for one stall.
// At most one row exists per (stall_id, user_id) pair; resubmission
// replaces the category values in place.
type RatingDB struct {
	RatingID     uuid.UUID `json:"id" db:"id"`
	StallID      uuid.UUID `json:"stall_id" db:"stall_id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	UserName     string    `json:"user_name" db:"user_name"` // Display name snapshot at submission time
	WaterQuality float64   `json:"water_quality" db:"water_quality"`
	Masks        float64   `json:"masks" db:"masks"`
	Gloves       float64   `json:"gloves" db:"gloves"`
	Cleanliness  float64   `json:"cleanliness" db:"cleanliness"`
	Overall      float64   `json:"overall" db:"overall"` // Mean of the four category values
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
