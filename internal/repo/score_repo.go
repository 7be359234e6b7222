// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Score
// model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving business rules (validation, period
// parsing) to the services package.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
)

// CreateScore inserts one score row for the given user and returns it.
//
// Validation (non-negative score, known difficulty) is expected to be
// enforced at higher layers. On failure, it returns the raw DB error.
func CreateScore(ctx context.Context, db *gorm.DB, userID string, points int, difficulty string) (*domain.Score, error) {
	s := &domain.Score{
		ID:         uuid.NewString(),
		UserID:     userID,
		Score:      points,
		Difficulty: difficulty,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// Leaderboard returns up to limit scores ordered by score descending.
//
// When since is non-nil, only rows with created_at >= *since are considered,
// which implements the week/month leaderboard windows. Ties keep the more
// recent row first so fresh results are not buried under old equals.
func Leaderboard(ctx context.Context, db *gorm.DB, since *time.Time, limit int) ([]domain.Score, error) {
	q := db.WithContext(ctx).Model(&domain.Score{})
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	var rows []domain.Score
	err := q.Order("score DESC").Order("created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
