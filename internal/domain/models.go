// Package domain defines the persistence models for scores and daily plays.
// These types are mapped with GORM and form the ledger the leaderboard and
// streak endpoints are built on.
package domain

import (
	"time"
)

// Score represents one submitted game result. The ledger is insert-only:
// every correct-guess session that submits produces its own row, and the
// leaderboard ranks raw rows rather than per-user running totals.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: identifier of the submitting player; indexed for lookups.
//   - Score: non-negative point total for the session.
//   - Difficulty: easy|normal|hard, informational only.
//   - CreatedAt: timestamp managed by GORM; the leaderboard's period filter
//     and the week/month windows operate on this column.
type Score struct {
	ID         string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id"    gorm:"type:varchar(64);not null;index:idx_user_scores"`
	Score      int       `json:"score"      gorm:"not null;check:score >= 0"`
	Difficulty string    `json:"difficulty" gorm:"type:varchar(16);not null;default:'normal'"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Score.
func (Score) TableName() string { return "scores" }

// Play records one calendar day of play for a user together with the streak
// counter valid on that day. At most one row may exist per (user, day); the
// unique index is the concurrency guard for the streak update, so concurrent
// same-day requests collapse into a single insert.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - UserID: identifier of the player.
//   - PlayDate: the calendar day (midnight UTC) this row covers.
//   - Streak: consecutive-day counter as of PlayDate (yesterday's + 1, or 1).
//   - Difficulty: difficulty the day's first game was played on.
//   - CreatedAt: timestamp managed by GORM.
type Play struct {
	ID         string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id"    gorm:"type:varchar(64);not null;uniqueIndex:ux_plays_user_day,priority:1"`
	PlayDate   time.Time `json:"play_date"  gorm:"not null;uniqueIndex:ux_plays_user_day,priority:2"`
	Streak     int       `json:"streak"     gorm:"not null;default:1"`
	Difficulty string    `json:"difficulty" gorm:"type:varchar(16);not null;default:'normal'"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the database table name for Play.
func (Play) TableName() string { return "plays" }
