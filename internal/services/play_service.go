// Package services – PlayService
//
// This file implements the PlayService, which maintains the daily-play
// streak ledger. Recording is idempotent per calendar day: the first request
// of the day writes one row carrying yesterday's streak + 1 (or 1 after a
// gap), and every later request that day returns the existing row untouched.
//
// Concurrency: the source this game descends from did a bare read-then-write
// and could double-increment under concurrent requests. Here the whole
// operation runs in a transaction and the (user_id, play_date) unique index
// is the arbiter: of two racing first-plays exactly one insert commits, the
// other detects the duplicate and re-reads the committed row.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
	"github.com/aniguessr/anime-guessr-backend/internal/repo"
)

// PlayService implements the use-cases around daily plays and streaks.
// It is context-aware and safe for concurrent use.
type PlayService struct {
	// DB is the database handle used for all play operations.
	DB *gorm.DB

	// Now is a clock override for tests; nil means time.Now.
	Now func() time.Time
}

// Record registers that userID played today and returns the day's play row.
//
// Semantics:
//   - At most one row per user per calendar day (UTC). A repeat call on the
//     same day is a no-op returning the existing row.
//   - The streak on a new row is yesterday's streak + 1 when yesterday has a
//     row, else 1.
//   - difficulty defaults to "normal"; unknown values are rejected with
//     ErrInvalidDifficulty before any write.
func (s *PlayService) Record(ctx context.Context, userID, difficulty string) (*domain.Play, error) {
	difficulty, err := normalizeDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	today := midnight(now)
	yesterday := today.AddDate(0, 0, -1)

	var out *domain.Play
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Already played today: idempotent no-op.
		if p, err := repo.GetPlayForDay(ctx, tx, userID, today); err == nil {
			out = p
			return nil
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		streak := 1
		if y, err := repo.GetPlayForDay(ctx, tx, userID, yesterday); err == nil {
			streak = y.Streak + 1
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		p, err := repo.CreatePlay(ctx, tx, userID, today, streak, difficulty)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	if err == nil {
		return out, nil
	}

	// Lost the race for today's insert: the committed row is the answer.
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
		return repo.GetPlayForDay(ctx, s.DB, userID, today)
	}
	return nil, err
}

// Stats returns the user's current streak and total recorded play days.
func (s *PlayService) Stats(ctx context.Context, userID string) (streak int, total int64, err error) {
	return repo.PlayStats(ctx, s.DB, userID)
}

// midnight truncates t to the start of its UTC day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
