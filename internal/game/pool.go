package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/aniguessr/anime-guessr-backend/internal/anilist"
)

// ErrPoolEmpty is returned by Random when no characters could be fetched and
// no last-known-good pool exists.
var ErrPoolEmpty = errors.New("character pool is empty")

// CharacterSource is the slice of the AniList client the pool and resolver
// consume. *anilist.Client satisfies it; tests substitute stubs.
type CharacterSource interface {
	PopularCharacters(ctx context.Context, page int) (*anilist.CharacterPage, error)
	SearchCharacter(ctx context.Context, name string) (*anilist.Character, error)
}

// Pool is the bounded, popularity-ordered set of candidate characters the
// game draws from. It is an explicitly constructed object injected into
// handlers (not package state) so tests get a fresh pool each time.
//
// Refresh replaces the whole slice atomically under the write lock only
// after a successful fetch; a failed refresh leaves the previous contents
// untouched (last known good). Concurrent refreshes collapse into one
// upstream run via singleflight.
type Pool struct {
	src  CharacterSource
	size int
	ttl  time.Duration
	log  zerolog.Logger

	mu        sync.RWMutex
	chars     []Character
	fetchedAt time.Time

	sf singleflight.Group
}

// NewPool builds a pool over src targeting size characters, refreshed when
// older than ttl.
func NewPool(src CharacterSource, size int, ttl time.Duration, log zerolog.Logger) *Pool {
	return &Pool{src: src, size: size, ttl: ttl, log: log}
}

// Random returns a random pooled character, refreshing the pool first when
// it is empty or stale. When the refresh fails but a previous pool exists,
// the stale pool is served rather than an error.
func (p *Pool) Random(ctx context.Context) (Character, error) {
	p.mu.RLock()
	fresh := len(p.chars) > 0 && time.Since(p.fetchedAt) < p.ttl
	p.mu.RUnlock()

	if !fresh {
		if err := p.refresh(ctx); err != nil {
			p.mu.RLock()
			stale := len(p.chars)
			p.mu.RUnlock()
			if stale == 0 {
				return Character{}, err
			}
			p.log.Warn().Err(err).Msg("pool refresh failed, serving stale pool")
		}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.chars) == 0 {
		return Character{}, ErrPoolEmpty
	}
	return p.chars[rand.IntN(len(p.chars))], nil
}

// Size returns the current number of pooled characters.
func (p *Pool) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.chars)
}

// refresh fetches a new pool, deduplicating concurrent callers.
func (p *Pool) refresh(ctx context.Context) error {
	_, err, _ := p.sf.Do("refresh", func() (any, error) {
		chars, err := p.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.chars = chars
		p.fetchedAt = time.Now()
		p.mu.Unlock()
		p.log.Info().Int("characters", len(chars)).Msg("character pool refreshed")
		return nil, nil
	})
	return err
}

// fetchAll pages through AniList's favourites-ordered characters, dropping
// entries without a usable portrait or an associated work, until the target
// size is reached or the source runs out of pages. Inter-page spacing is
// enforced by the client's limiter.
func (p *Pool) fetchAll(ctx context.Context) ([]Character, error) {
	var out []Character
	for page := 1; len(out) < p.size; page++ {
		res, err := p.src.PopularCharacters(ctx, page)
		if err != nil {
			// Keep what we have; a partial pool beats none. An empty
			// result still propagates the failure.
			if len(out) > 0 {
				p.log.Warn().Err(err).Int("page", page).Msg("pool pagination aborted")
				break
			}
			return nil, err
		}
		for _, c := range res.Characters {
			if !c.HasUsableImage() || !c.HasAnime() {
				continue
			}
			out = append(out, fromAniList(c))
		}
		if !res.PageInfo.HasNextPage {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrPoolEmpty
	}
	if len(out) > p.size {
		out = out[:p.size]
	}
	return out, nil
}
