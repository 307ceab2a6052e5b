package models

import (
	"time"
)

// UserStats represents a user's persisted voice time and currency balance.
// A row is created lazily on the first upsert and never deleted.
type UserStats struct {
	UserID       int64     `db:"user_id"`
	TotalSeconds int64     `db:"total_seconds"`
	Balance      int64     `db:"balance"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
