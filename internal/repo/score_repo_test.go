package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
)

func TestCreateScore(t *testing.T) {
	db := newTestDB(t)

	s, err := CreateScore(context.Background(), db, "u1", 150, "hard")
	if err != nil {
		t.Fatalf("CreateScore: %v", err)
	}
	if s.ID == "" || s.UserID != "u1" || s.Score != 150 || s.Difficulty != "hard" {
		t.Fatalf("unexpected row: %+v", s)
	}
	if s.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}

	var count int64
	db.Model(&domain.Score{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}

func TestLeaderboard_OrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, pts := range []int{10, 300, 150, 42} {
		if _, err := CreateScore(ctx, db, "u1", pts, "normal"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, err := Leaderboard(ctx, db, nil, 3)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}
	if rows[0].Score != 300 || rows[1].Score != 150 || rows[2].Score != 42 {
		t.Fatalf("order = %d,%d,%d", rows[0].Score, rows[1].Score, rows[2].Score)
	}
}

func TestLeaderboard_SinceWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	old := domain.Score{
		ID:         uuid.NewString(),
		UserID:     "ancient",
		Score:      999,
		Difficulty: "normal",
		CreatedAt:  time.Now().UTC().AddDate(0, 0, -14),
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed old: %v", err)
	}
	if _, err := CreateScore(ctx, db, "recent", 5, "normal"); err != nil {
		t.Fatalf("seed recent: %v", err)
	}

	since := time.Now().UTC().AddDate(0, 0, -7)
	rows, err := Leaderboard(ctx, db, &since, 10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "recent" {
		t.Fatalf("windowed rows = %+v", rows)
	}
}

func TestLeaderboard_TiesPreferRecent(t *testing.T) {
	db := newTestDB(t)

	first := domain.Score{
		ID: uuid.NewString(), UserID: "early", Score: 100, Difficulty: "normal",
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	second := domain.Score{
		ID: uuid.NewString(), UserID: "late", Score: 100, Difficulty: "normal",
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows, err := Leaderboard(context.Background(), db, nil, 10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if rows[0].UserID != "late" {
		t.Fatalf("tie order: got %q first, want the newer row", rows[0].UserID)
	}
}
