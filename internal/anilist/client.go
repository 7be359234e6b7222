// Package anilist is the client for the external AniList GraphQL API, the
// source of character metadata (canonical name, portrait URL, top anime,
// favourites count).
//
// The API is rate limited and occasionally unavailable, so the client:
//   - paces all requests with a token bucket so bulk pagination keeps a
//     fixed spacing between pages,
//   - retries transient failures with capped exponential backoff,
//   - applies a per-request deadline on top of the caller's context.
//
// Callers get plain errors back; degrading to silhouettes or placeholders is
// the image resolver's job, not this package's.
package anilist

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/machinebox/graphql"
	"golang.org/x/time/rate"

	"github.com/aniguessr/anime-guessr-backend/internal/config"
)

// ErrCharacterNotFound is returned by SearchCharacter when AniList has no
// character matching the search term.
var ErrCharacterNotFound = errors.New("anilist: character not found")

// popularQuery pages through characters by favourites, carrying the top
// anime of each so the pool can filter characters without an associated work.
const popularQuery = `
query ($page: Int, $perPage: Int) {
  Page(page: $page, perPage: $perPage) {
    pageInfo {
      hasNextPage
      total
    }
    characters(sort: FAVOURITES_DESC) {
      id
      name {
        full
      }
      favourites
      image {
        large
      }
      media(sort: POPULARITY_DESC, perPage: 1) {
        nodes {
          title {
            romaji
            english
          }
          popularity
        }
      }
    }
  }
}`

const searchQuery = `
query ($search: String) {
  Character(search: $search) {
    id
    name {
      full
    }
    favourites
    image {
      large
    }
    media(sort: POPULARITY_DESC, perPage: 1) {
      nodes {
        title {
          romaji
          english
        }
        popularity
      }
    }
  }
}`

// Character is AniList's character payload as used by the game.
type Character struct {
	ID   int `json:"id"`
	Name struct {
		Full string `json:"full"`
	} `json:"name"`
	Favourites int `json:"favourites"`
	Image      struct {
		Large string `json:"large"`
	} `json:"image"`
	Media struct {
		Nodes []MediaNode `json:"nodes"`
	} `json:"media"`
}

// MediaNode is the top associated work of a character.
type MediaNode struct {
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
	} `json:"title"`
	Popularity int `json:"popularity"`
}

// AnimeTitle returns the display title of the character's top anime,
// preferring the English title, then romaji, then a fixed fallback.
func (c Character) AnimeTitle() string {
	if len(c.Media.Nodes) == 0 {
		return "Unknown Anime"
	}
	t := c.Media.Nodes[0].Title
	if t.English != "" {
		return t.English
	}
	if t.Romaji != "" {
		return t.Romaji
	}
	return "Unknown Anime"
}

// HasUsableImage reports whether the character carries a real portrait.
// AniList serves "default.jpg" for characters without one.
func (c Character) HasUsableImage() bool {
	return c.Image.Large != "" && !strings.Contains(c.Image.Large, "default.jpg")
}

// HasAnime reports whether the character has an associated work with a title.
func (c Character) HasAnime() bool {
	return len(c.Media.Nodes) > 0 &&
		(c.Media.Nodes[0].Title.Romaji != "" || c.Media.Nodes[0].Title.English != "")
}

// PageInfo is AniList's pagination envelope.
type PageInfo struct {
	HasNextPage bool `json:"hasNextPage"`
	Total       int  `json:"total"`
}

// CharacterPage is one page of the popularity-ordered character listing.
type CharacterPage struct {
	PageInfo   PageInfo
	Characters []Character
}

// Client talks to the AniList GraphQL endpoint. It is safe for concurrent
// use; the embedded limiter serializes request starts across goroutines.
type Client struct {
	gql        *graphql.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	maxRetries uint64
	pageSize   int
}

// NewClient builds a Client from configuration.
func NewClient(cfg config.AniListConfig) *Client {
	httpc := &http.Client{Timeout: cfg.RequestTimeout}
	lim := rate.NewLimiter(rate.Inf, 1)
	if cfg.PageDelay > 0 {
		lim = rate.NewLimiter(rate.Every(cfg.PageDelay), 1)
	}
	return &Client{
		gql:        graphql.NewClient(cfg.URL, graphql.WithHTTPClient(httpc)),
		limiter:    lim,
		timeout:    cfg.RequestTimeout,
		maxRetries: uint64(cfg.MaxRetries),
		pageSize:   cfg.PageSize,
	}
}

// PopularCharacters fetches one page of characters ordered by favourites
// descending.
func (c *Client) PopularCharacters(ctx context.Context, page int) (*CharacterPage, error) {
	req := graphql.NewRequest(popularQuery)
	req.Var("page", page)
	req.Var("perPage", c.pageSize)

	var resp struct {
		Page struct {
			PageInfo   PageInfo    `json:"pageInfo"`
			Characters []Character `json:"characters"`
		} `json:"Page"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &CharacterPage{
		PageInfo:   resp.Page.PageInfo,
		Characters: resp.Page.Characters,
	}, nil
}

// SearchCharacter looks a single character up by name.
func (c *Client) SearchCharacter(ctx context.Context, name string) (*Character, error) {
	req := graphql.NewRequest(searchQuery)
	req.Var("search", name)

	var resp struct {
		Character *Character `json:"Character"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	if resp.Character == nil || resp.Character.Name.Full == "" {
		return nil, ErrCharacterNotFound
	}
	return resp.Character, nil
}

// run executes one GraphQL request with pacing, deadline, and retries.
func (c *Client) run(ctx context.Context, req *graphql.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	op := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		if err := c.gql.Run(reqCtx, req, out); err != nil {
			if isGraphQLDenial(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)
	return backoff.Retry(op, bo)
}

// isGraphQLDenial reports whether err is a GraphQL-level response rather
// than a transport failure. Those are deterministic (unknown character, bad
// query) and retrying only delays the caller's fallback chain. Non-200
// statuses and rate-limit responses stay retryable.
func isGraphQLDenial(err error) bool {
	msg := err.Error()
	if !strings.HasPrefix(msg, "graphql:") {
		return false
	}
	if strings.Contains(msg, "non-200 status code") {
		return false
	}
	return !strings.Contains(msg, "Too Many Requests")
}
