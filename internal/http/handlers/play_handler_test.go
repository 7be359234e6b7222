package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
	"github.com/aniguessr/anime-guessr-backend/internal/services"
)

func TestRecordPlay_Unauthenticated(t *testing.T) {
	svc := stubPlaySvc{record: func(context.Context, string, string) (*domain.Play, error) {
		t.Fatal("service should not be called without a user")
		return nil, nil
	}}
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, svc, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/plays", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401. body=%s", w.Code, w.Body.String())
	}
}

func TestRecordPlay_EmptyBodyIsFine(t *testing.T) {
	row := &domain.Play{ID: "p-1", UserID: "u-123", Streak: 1, Difficulty: "normal"}
	svc := stubPlaySvc{record: func(_ context.Context, userID, difficulty string) (*domain.Play, error) {
		if userID != "u-123" || difficulty != "" {
			t.Fatalf("service args mismatch: %q %q", userID, difficulty)
		}
		return row, nil
	}}
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, svc, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plays", nil)
	req.Header.Set("X-User-ID", "u-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200. body=%s", w.Code, w.Body.String())
	}
	var resp RecordPlayResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !resp.Success || resp.Data == nil || resp.Data.Streak != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRecordPlay_PassesDifficulty(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := stubPlaySvc{record: func(_ context.Context, userID, difficulty string) (*domain.Play, error) {
		if difficulty != "hard" {
			t.Fatalf("difficulty = %q, want hard", difficulty)
		}
		return &domain.Play{ID: "p-2", UserID: userID, PlayDate: day, Streak: 4, Difficulty: "hard"}, nil
	}}
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, svc, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plays", bytes.NewBufferString(`{"difficulty":"hard"}`))
	req.Header.Set("X-User-ID", "u-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200. body=%s", w.Code, w.Body.String())
	}
	var resp RecordPlayResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Data == nil || resp.Data.Streak != 4 || resp.Data.Difficulty != "hard" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRecordPlay_ErrorMappings(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"difficulty", services.ErrInvalidDifficulty, http.StatusBadRequest},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc := stubPlaySvc{record: func(context.Context, string, string) (*domain.Play, error) {
				return nil, tc.err
			}}
			h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, svc, testPlaceholder)
			r := newTestRouter(h)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/plays", bytes.NewBufferString(`{"difficulty":"impossible"}`))
			req.Header.Set("X-User-ID", "u-123")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status=%d, want %d. body=%s", w.Code, tc.wantStatus, w.Body.String())
			}
			var er ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
				t.Fatalf("json: %v", err)
			}
			if er.Code == "" || er.Message == "" {
				t.Fatalf("error envelope missing fields: %+v", er)
			}
		})
	}
}

func TestPlayStats_Unauthenticated(t *testing.T) {
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plays", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}

func TestPlayStats_Success(t *testing.T) {
	svc := stubPlaySvc{stats: func(_ context.Context, userID string) (int, int64, error) {
		if userID != "u-123" {
			t.Fatalf("expected userID u-123, got %q", userID)
		}
		return 4, 31, nil
	}}
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, svc, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plays", nil)
	req.Header.Set("X-User-ID", "u-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200. body=%s", w.Code, w.Body.String())
	}
	var resp PlayStatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.CurrentStreak != 4 || resp.TotalPlays != 31 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPlayStats_ServiceFailure(t *testing.T) {
	svc := stubPlaySvc{stats: func(context.Context, string) (int, int64, error) {
		return 0, 0, context.DeadlineExceeded
	}}
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, svc, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plays", nil)
	req.Header.Set("X-User-ID", "u-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
}
