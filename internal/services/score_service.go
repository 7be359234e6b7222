// Package services – ScoreService
//
// This file implements the ScoreService, which records submitted game scores
// and serves the leaderboard. The ledger is insert-only: each submission is
// its own row, and the leaderboard ranks raw rows within a time window. The
// cumulative-total variant seen in earlier revisions of the game was
// rejected because it makes windowed leaderboards (period=week) meaningless.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
	"github.com/aniguessr/anime-guessr-backend/internal/repo"
)

// Leaderboard query bounds.
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// ScoreService implements the use-cases around score submission and the
// leaderboard. It is context-aware and safe for concurrent use.
type ScoreService struct {
	// DB is the database handle used for all score operations.
	DB *gorm.DB
}

// Submit validates and persists one score row for userID.
//
// Semantics:
//   - points must be >= 0; otherwise ErrInvalidScore.
//   - difficulty defaults to "normal" when empty; unknown values are
//     rejected with ErrInvalidDifficulty.
//   - On success the stored row (with generated ID and timestamp) is
//     returned so the caller can echo it to the client.
func (s *ScoreService) Submit(ctx context.Context, userID string, points int, difficulty string) (*domain.Score, error) {
	if points < 0 {
		return nil, ErrInvalidScore
	}
	difficulty, err := normalizeDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	return repo.CreateScore(ctx, s.DB, userID, points, difficulty)
}

// Leaderboard returns the top scores for the given period.
//
// period must be "all", "week", or "month" (empty defaults to "all");
// anything else yields ErrInvalidPeriod. limit is clamped to
// [1, MaxLeaderboardLimit] with DefaultLeaderboardLimit used for values
// <= 0. Rows come back sorted by score descending.
func (s *ScoreService) Leaderboard(ctx context.Context, period string, limit int) ([]domain.Score, error) {
	since, err := periodStart(period, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	return repo.Leaderboard(ctx, s.DB, since, limit)
}

// periodStart maps a leaderboard period to the lower bound of its
// created_at window. A nil result means no bound (period "all").
func periodStart(period string, now time.Time) (*time.Time, error) {
	switch period {
	case "", "all":
		return nil, nil
	case "week":
		t := now.AddDate(0, 0, -7)
		return &t, nil
	case "month":
		t := now.AddDate(0, -1, 0)
		return &t, nil
	default:
		return nil, ErrInvalidPeriod
	}
}

// normalizeDifficulty applies the default and rejects unknown values.
func normalizeDifficulty(d string) (string, error) {
	switch d {
	case "":
		return "normal", nil
	case "easy", "normal", "hard":
		return d, nil
	default:
		return "", ErrInvalidDifficulty
	}
}
