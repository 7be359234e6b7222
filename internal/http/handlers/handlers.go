// Handler wiring.
//
// Handlers are transport-thin: they validate input, delegate to the game
// and service layers, and translate errors into HTTP results. Dependencies
// come in as interfaces so tests can substitute stubs.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
	"github.com/aniguessr/anime-guessr-backend/internal/game"
	"github.com/aniguessr/anime-guessr-backend/internal/http/middleware"
)

// CharacterPool serves random characters for new rounds.
type CharacterPool interface {
	Random(ctx context.Context) (game.Character, error)
}

// ImageResolver turns a pooled character into a displayable image,
// degrading through silhouettes down to a placeholder. Both methods are
// total. The full character is passed, not just the name, so the resolver
// can use the portrait URL the pool already fetched.
type ImageResolver interface {
	Resolve(ctx context.Context, ch game.Character) game.Resolution
	ResolveSilhouette(ctx context.Context, ch game.Character) game.Resolution
}

// ScoreService records submitted scores and serves the leaderboard.
//
// Implementations must be safe for concurrent use and honor the provided
// context.
type ScoreService interface {
	Submit(ctx context.Context, userID string, points int, difficulty string) (*domain.Score, error)
	Leaderboard(ctx context.Context, period string, limit int) ([]domain.Score, error)
}

// PlayService maintains the daily-play streak ledger.
//
// Implementations must be safe for concurrent use and honor the provided
// context.
type PlayService interface {
	Record(ctx context.Context, userID, difficulty string) (*domain.Play, error)
	Stats(ctx context.Context, userID string) (streak int, total int64, err error)
}

// Handlers groups the HTTP endpoints of the game API.
type Handlers struct {
	pool        CharacterPool
	resolver    ImageResolver
	scoreSvc    ScoreService
	playSvc     PlayService
	placeholder string
}

// New constructs a Handlers instance bound to the given dependencies.
// placeholderURL is served when no character can be fetched at all.
func New(pool CharacterPool, resolver ImageResolver, scoreSvc ScoreService, playSvc PlayService, placeholderURL string) *Handlers {
	return &Handlers{pool: pool, resolver: resolver, scoreSvc: scoreSvc, playSvc: playSvc, placeholder: placeholderURL}
}

// userID returns the authenticated user ID set by the identity middleware.
func userID(c *gin.Context) string {
	return middleware.UserID(c)
}
