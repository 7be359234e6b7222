// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Play model
// (daily streak ledger).
//
// Error semantics:
//   - GetPlayForDay returns ErrNotFound when the user has no row for the
//     requested day.
//   - CreatePlay relies on the (user_id, play_date) unique index; inserting
//     a duplicate day returns the raw DB error, which the service layer
//     detects and treats as "already played today".
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
)

// GetPlayForDay returns the user's play row whose play_date equals day
// (callers pass midnight UTC), or ErrNotFound.
func GetPlayForDay(ctx context.Context, db *gorm.DB, userID string, day time.Time) (*domain.Play, error) {
	var p domain.Play
	err := db.WithContext(ctx).
		Where("user_id = ? AND play_date = ?", userID, day).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// CreatePlay inserts the play row for the given day with the supplied streak
// counter and returns it. The unique index on (user_id, play_date) makes a
// second same-day insert fail rather than double-count.
func CreatePlay(ctx context.Context, db *gorm.DB, userID string, day time.Time, streak int, difficulty string) (*domain.Play, error) {
	p := &domain.Play{
		ID:         uuid.NewString(),
		UserID:     userID,
		PlayDate:   day,
		Streak:     streak,
		Difficulty: difficulty,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// PlayStats returns aggregate play metadata for a user: the streak on the
// most recent play row and the total number of recorded play days.
//
// When the user has never played, streak is 0 and total is 0. The streak is
// reported as last recorded, not recomputed: a player who missed days keeps
// showing their old counter until the next Record resets it to 1, matching
// the ledger's write-side semantics.
func PlayStats(ctx context.Context, db *gorm.DB, userID string) (streak int, total int64, err error) {
	q := db.WithContext(ctx).Model(&domain.Play{}).Where("user_id = ?", userID)

	if err = q.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if total == 0 {
		return 0, 0, nil
	}

	var row struct {
		Streak int
	}
	if err = q.Select("streak").Order("play_date DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Streak, total, nil
}
