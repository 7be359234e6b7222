package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:gamesvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Score{}, &domain.Play{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestScore_Submit_RejectsNegative(t *testing.T) {
	svc := &ScoreService{DB: newTestDB(t)}

	if _, err := svc.Submit(context.Background(), "u1", -5, "normal"); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
}

func TestScore_Submit_RejectsUnknownDifficulty(t *testing.T) {
	svc := &ScoreService{DB: newTestDB(t)}

	if _, err := svc.Submit(context.Background(), "u1", 10, "nightmare"); !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
}

func TestScore_Submit_DefaultsDifficultyAndPersists(t *testing.T) {
	db := newTestDB(t)
	svc := &ScoreService{DB: db}

	s, err := svc.Submit(context.Background(), "u1", 42, "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s.ID == "" || s.Score != 42 || s.Difficulty != "normal" {
		t.Fatalf("unexpected row: %+v", s)
	}

	var count int64
	db.Model(&domain.Score{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}

func TestScore_Submit_InsertOnly(t *testing.T) {
	db := newTestDB(t)
	svc := &ScoreService{DB: db}

	for _, pts := range []int{10, 20, 30} {
		if _, err := svc.Submit(context.Background(), "u1", pts, "easy"); err != nil {
			t.Fatalf("Submit(%d): %v", pts, err)
		}
	}

	var count int64
	db.Model(&domain.Score{}).Where("user_id = ?", "u1").Count(&count)
	if count != 3 {
		t.Fatalf("rows = %d, want 3 (one per submission, no aggregation)", count)
	}
}

func TestScore_Leaderboard_SortsAndLimits(t *testing.T) {
	db := newTestDB(t)
	svc := &ScoreService{DB: db}

	for i, pts := range []int{50, 200, 100, 75} {
		if _, err := svc.Submit(context.Background(), fmt.Sprintf("u%d", i), pts, "normal"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, err := svc.Leaderboard(context.Background(), "all", 3)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}
	if rows[0].Score != 200 || rows[1].Score != 100 || rows[2].Score != 75 {
		t.Fatalf("order = %d,%d,%d, want 200,100,75", rows[0].Score, rows[1].Score, rows[2].Score)
	}
}

func TestScore_Leaderboard_WeekWindowExcludesOldRows(t *testing.T) {
	db := newTestDB(t)
	svc := &ScoreService{DB: db}

	if _, err := svc.Submit(context.Background(), "recent", 10, "normal"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	old := domain.Score{
		ID:         uuid.NewString(),
		UserID:     "ancient",
		Score:      999,
		Difficulty: "normal",
		CreatedAt:  time.Now().UTC().AddDate(0, 0, -30),
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed old: %v", err)
	}

	rows, err := svc.Leaderboard(context.Background(), "week", 10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "recent" {
		t.Fatalf("rows = %+v, want only the recent score", rows)
	}

	rows, err = svc.Leaderboard(context.Background(), "all", 10)
	if err != nil {
		t.Fatalf("Leaderboard all: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("all-time rows = %d, want 2", len(rows))
	}
}

func TestScore_Leaderboard_InvalidPeriod(t *testing.T) {
	svc := &ScoreService{DB: newTestDB(t)}

	if _, err := svc.Leaderboard(context.Background(), "decade", 10); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestScore_Leaderboard_ClampsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := &ScoreService{DB: db}

	for i := 0; i < 15; i++ {
		if _, err := svc.Submit(context.Background(), fmt.Sprintf("u%d", i), i, "normal"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// limit <= 0 falls back to the default.
	rows, err := svc.Leaderboard(context.Background(), "all", 0)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(rows) != DefaultLeaderboardLimit {
		t.Fatalf("len = %d, want default %d", len(rows), DefaultLeaderboardLimit)
	}

	// Oversized limits are capped, not rejected.
	if _, err := svc.Leaderboard(context.Background(), "all", MaxLeaderboardLimit+50); err != nil {
		t.Fatalf("Leaderboard with oversized limit: %v", err)
	}
}
