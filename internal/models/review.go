package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDB represents a free-text review of a stall. A user may post
// any number of reviews per stall.
type ReviewDB struct {
	ReviewID  uuid.UUID `json:"id" db:"id"`
	StallID   uuid.UUID `json:"stall_id" db:"stall_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	UserName  string    `json:"user_name" db:"user_name"` // Display name snapshot at submission time
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
