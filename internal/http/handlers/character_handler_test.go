package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
	"github.com/aniguessr/anime-guessr-backend/internal/game"
	"github.com/aniguessr/anime-guessr-backend/internal/http/middleware"
)

const testPlaceholder = "/images/mystery.svg"

// ---- stubs to satisfy handlers.New() dependencies ----

type stubPool struct {
	char game.Character
	err  error
}

func (s stubPool) Random(context.Context) (game.Character, error) { return s.char, s.err }

type stubResolver struct {
	resolve    func(ctx context.Context, ch game.Character) game.Resolution
	silhouette func(ctx context.Context, ch game.Character) game.Resolution
}

func (s stubResolver) Resolve(ctx context.Context, ch game.Character) game.Resolution {
	if s.resolve != nil {
		return s.resolve(ctx, ch)
	}
	return game.Resolution{ImageURL: testPlaceholder, Source: game.SourcePlaceholder}
}

func (s stubResolver) ResolveSilhouette(ctx context.Context, ch game.Character) game.Resolution {
	if s.silhouette != nil {
		return s.silhouette(ctx, ch)
	}
	return game.Resolution{ImageURL: testPlaceholder, Source: game.SourcePlaceholder}
}

type stubScoreSvc struct {
	submit func(ctx context.Context, userID string, points int, difficulty string) (*domain.Score, error)
	list   func(ctx context.Context, period string, limit int) ([]domain.Score, error)
}

func (s stubScoreSvc) Submit(ctx context.Context, userID string, points int, difficulty string) (*domain.Score, error) {
	if s.submit != nil {
		return s.submit(ctx, userID, points, difficulty)
	}
	return nil, nil
}

func (s stubScoreSvc) Leaderboard(ctx context.Context, period string, limit int) ([]domain.Score, error) {
	if s.list != nil {
		return s.list(ctx, period, limit)
	}
	return nil, nil
}

type stubPlaySvc struct {
	record func(ctx context.Context, userID, difficulty string) (*domain.Play, error)
	stats  func(ctx context.Context, userID string) (int, int64, error)
}

func (s stubPlaySvc) Record(ctx context.Context, userID, difficulty string) (*domain.Play, error) {
	if s.record != nil {
		return s.record(ctx, userID, difficulty)
	}
	return nil, nil
}

func (s stubPlaySvc) Stats(ctx context.Context, userID string) (int, int64, error) {
	if s.stats != nil {
		return s.stats(ctx, userID)
	}
	return 0, 0, nil
}

// newTestRouter mounts the identity middleware (dev mode, X-User-ID trusted)
// in front of the handlers, matching the production route order.
func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity(""))
	r.GET("/anime-image", h.RandomCharacter)
	r.GET("/character-fact", h.CharacterFact)
	r.POST("/check-guess", h.CheckGuess)
	r.POST("/scores", middleware.RequireUser(), h.SubmitScore)
	r.GET("/scores", h.Leaderboard)
	r.POST("/plays", middleware.RequireUser(), h.RecordPlay)
	r.GET("/plays", middleware.RequireUser(), h.PlayStats)
	return r
}

// ---- tests ----

func TestRandomCharacter_Success(t *testing.T) {
	pool := stubPool{char: game.Character{Name: "Monkey D. Luffy", ImageURL: "https://cdn/luffy.png", Anime: "One Piece"}}
	res := stubResolver{resolve: func(_ context.Context, ch game.Character) game.Resolution {
		if ch.Name != "Monkey D. Luffy" || ch.ImageURL != "https://cdn/luffy.png" {
			t.Fatalf("resolver got %+v, want the full pooled character", ch)
		}
		return game.Resolution{ImageURL: "https://cdn/luffy.png", Source: game.SourceOriginal}
	}}
	h := New(pool, res, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anime-image", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200. body=%s", w.Code, w.Body.String())
	}
	var resp RandomCharacterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.CharacterName != "Monkey D. Luffy" || resp.AnimeTitle != "One Piece" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.ImageURL != "https://cdn/luffy.png" || resp.Source != "original" {
		t.Fatalf("unexpected image fields: %+v", resp)
	}
	if resp.Error != "" {
		t.Fatalf("error field should be empty on success, got %q", resp.Error)
	}
}

func TestRandomCharacter_PoolFailureStill200(t *testing.T) {
	pool := stubPool{err: errors.New("anilist down")}
	h := New(pool, stubResolver{}, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anime-image", nil))

	// The client must always get something renderable: 200 with the
	// placeholder and the failure reported in the body.
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var resp RandomCharacterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.ImageURL != testPlaceholder || resp.Source != "placeholder" {
		t.Fatalf("expected placeholder image, got %+v", resp)
	}
	if resp.CharacterName != "Unknown Character" || resp.Error == "" {
		t.Fatalf("expected error body, got %+v", resp)
	}
}

func TestRandomCharacter_SilhouetteMode(t *testing.T) {
	pool := stubPool{char: game.Character{Name: "Naruto Uzumaki", ImageURL: "https://cdn/naruto.png"}}
	var silhouetteCalled, resolveCalled bool
	res := stubResolver{
		resolve: func(context.Context, game.Character) game.Resolution {
			resolveCalled = true
			return game.Resolution{ImageURL: "https://cdn/naruto.png", Source: game.SourceOriginal}
		},
		silhouette: func(_ context.Context, ch game.Character) game.Resolution {
			silhouetteCalled = true
			if ch.ImageURL != "https://cdn/naruto.png" {
				t.Fatalf("silhouette chain got %+v, want the pooled portrait URL", ch)
			}
			return game.Resolution{ImageURL: "/silhouettes/naruto_uzumaki.png", Source: game.SourceSilhouette}
		},
	}
	h := New(pool, res, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anime-image?mode=silhouette", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	if !silhouetteCalled || resolveCalled {
		t.Fatalf("mode=silhouette must use the silhouette chain only (silhouette=%v, resolve=%v)", silhouetteCalled, resolveCalled)
	}
	var resp RandomCharacterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Source != "silhouette" || !strings.HasPrefix(resp.ImageURL, "/silhouettes/") {
		t.Fatalf("unexpected silhouette payload: %+v", resp)
	}
}

func TestCharacterFact_MissingName(t *testing.T) {
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/character-fact", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code == "" || er.Message == "" {
		t.Fatalf("error envelope missing fields: %+v", er)
	}
}

func TestCharacterFact_LetterHint(t *testing.T) {
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/character-fact?name=Monkey+D.+Luffy&type=letter", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var resp CharacterFactResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Fact != `The name starts with "M"` {
		t.Fatalf("letter hint = %q", resp.Fact)
	}
}

func TestCheckGuess_MatchVariants(t *testing.T) {
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	cases := []struct {
		name      string
		character string
		guess     string
		want      bool
	}{
		{"exact", "Monkey D. Luffy", "Monkey D. Luffy", true},
		{"case folded", "Monkey D. Luffy", "monkey d. luffy", true},
		{"significant token", "Monkey D. Luffy", "Luffy", true},
		{"initial token rejected", "Monkey D. Luffy", "D.", false},
		{"wrong name", "Monkey D. Luffy", "Zoro", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, _ := json.Marshal(CheckGuessRequest{CharacterName: tc.character, Guess: tc.guess})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/check-guess", strings.NewReader(string(payload)))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, want 200. body=%s", w.Code, w.Body.String())
			}
			var resp CheckGuessResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("json: %v", err)
			}
			if resp.Match != tc.want {
				t.Fatalf("match = %v, want %v", resp.Match, tc.want)
			}
		})
	}
}

func TestCheckGuess_MissingFields(t *testing.T) {
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/check-guess", strings.NewReader(`{"guess":"luffy"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeBadRequest {
		t.Fatalf("code = %q", er.Code)
	}
}

func TestCharacterFact_NeverEmpty(t *testing.T) {
	h := New(stubPool{}, stubResolver{}, stubScoreSvc{}, stubPlaySvc{}, testPlaceholder)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/character-fact?name=Totally+Unknown+Person", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var resp CharacterFactResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Fact == "" {
		t.Fatal("fact must never be empty, even for unknown characters")
	}
}
