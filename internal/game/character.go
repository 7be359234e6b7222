// Package game implements the character-acquisition pipeline (pool, cache,
// image fallback chain) and the guess-checking and hint logic of the
// guessing game.
package game

import (
	"github.com/aniguessr/anime-guessr-backend/internal/anilist"
)

// Character is the in-game view of a fetched character. Values are immutable
// once built; caches overwrite whole entries, never fields.
type Character struct {
	// Name is the canonical full name as returned by AniList; guesses are
	// checked against it.
	Name string `json:"characterName"`
	// ImageURL is the original portrait URL.
	ImageURL string `json:"imageUrl"`
	// Anime is the title of the character's top associated work.
	Anime string `json:"animeTitle,omitempty"`
	// Favourites is AniList's popularity signal, kept for pool ordering.
	Favourites int `json:"-"`
}

// fromAniList converts an API payload into the game's character value.
func fromAniList(c anilist.Character) Character {
	return Character{
		Name:       c.Name.Full,
		ImageURL:   c.Image.Large,
		Anime:      c.AnimeTitle(),
		Favourites: c.Favourites,
	}
}
