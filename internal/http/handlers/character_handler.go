// Character HTTP handlers.
//
// This file exposes the round endpoints:
//   - GET  /anime-image      (random character with a displayable image)
//   - GET  /character-fact   (spoiler-free hint for a character)
//   - POST /check-guess      (server-side guess verification)
//
// The anime-image endpoint always answers 200 with a JSON body: the game
// client must always receive something it can render, so upstream failures
// are reported through an "error" field next to the placeholder image
// rather than through an HTTP error status.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniguessr/anime-guessr-backend/internal/game"
	"github.com/aniguessr/anime-guessr-backend/internal/http/middleware"
)

// RandomCharacterResponse is the payload of GET /anime-image.
type RandomCharacterResponse struct {
	ImageURL      string `json:"imageUrl" example:"https://s4.anilist.co/file/anilistcdn/character/large/b40-abc.png"`
	CharacterName string `json:"characterName" example:"Monkey D. Luffy"`
	AnimeTitle    string `json:"animeTitle,omitempty" example:"One Piece"`
	// Source reports which fallback tier produced the image:
	// original, silhouette, or placeholder.
	Source string `json:"source" example:"original"`
	// Error is set (alongside the placeholder image) when no character
	// could be fetched. The status is still 200.
	Error string `json:"error,omitempty" example:"Failed to fetch characters"`
}

// CharacterFactResponse is the payload of GET /character-fact.
type CharacterFactResponse struct {
	Fact string `json:"fact" example:"Wears a straw hat and red vest"`
}

// CheckGuessRequest is the payload of POST /check-guess.
type CheckGuessRequest struct {
	// CharacterName is the canonical full name of the round's character.
	CharacterName string `json:"characterName" binding:"required" example:"Monkey D. Luffy"`
	// Guess is the player's answer as typed.
	Guess string `json:"guess" binding:"required" example:"luffy"`
}

// CheckGuessResponse is the payload of POST /check-guess.
type CheckGuessResponse struct {
	Match bool `json:"match" example:"true"`
}

// RandomCharacter godoc
// @ID          randomCharacter
// @Summary     Start a round with a random character
// @Description Picks a random popular character and resolves a displayable image for it. With mode=silhouette the original portrait is never returned, only an obscured silhouette or the placeholder. Always answers 200; failures are reported in the body.
// @Tags        Game
// @Produce     json
//
// @Param       mode  query  string  false  "Image mode"  Enums(normal, silhouette)  default(normal)
//
// @Success     200 {object} handlers.RandomCharacterResponse
// @Router      /anime-image [get]
func (h *Handlers) RandomCharacter(c *gin.Context) {
	ctx := c.Request.Context()

	ch, err := h.pool.Random(ctx)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("no character available")
		middleware.ImageSourceServed.WithLabelValues(string(game.SourcePlaceholder)).Inc()
		ok(c, http.StatusOK, RandomCharacterResponse{
			ImageURL:      h.placeholder,
			CharacterName: "Unknown Character",
			Source:        string(game.SourcePlaceholder),
			Error:         "Failed to fetch characters",
		})
		return
	}

	var res game.Resolution
	if c.Query("mode") == "silhouette" {
		res = h.resolver.ResolveSilhouette(ctx, ch)
	} else {
		res = h.resolver.Resolve(ctx, ch)
	}
	middleware.ImageSourceServed.WithLabelValues(string(res.Source)).Inc()

	ok(c, http.StatusOK, RandomCharacterResponse{
		ImageURL:      res.ImageURL,
		CharacterName: ch.Name,
		AnimeTitle:    ch.Anime,
		Source:        string(res.Source),
	})
}

// CharacterFact godoc
// @ID          characterFact
// @Summary     Get a hint for a character
// @Description Returns a hint that does not reveal the character's name: a curated fact when one exists, a series-level visual hint otherwise, or a generic hint as the last resort. With type=letter the hint is the first letter of the name.
// @Tags        Game
// @Produce     json
//
// @Param       name  query  string  true   "Character full name"  example(Monkey D. Luffy)
// @Param       type  query  string  false  "Hint type"  Enums(fact, letter)  default(fact)
//
// @Success     200 {object} handlers.CharacterFactResponse
// @Failure     400 {object} handlers.ErrorResponse "Missing character name"
// @Router      /character-fact [get]
func (h *Handlers) CharacterFact(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "character name is required")
		return
	}

	if c.Query("type") == "letter" {
		ok(c, http.StatusOK, CharacterFactResponse{
			Fact: "The name starts with \"" + game.FirstLetter(name) + "\"",
		})
		return
	}

	ok(c, http.StatusOK, CharacterFactResponse{Fact: game.Fact(name)})
}

// CheckGuess godoc
// @ID          checkGuess
// @Summary     Check a guess against a character
// @Description Reports whether the guess names the character. Matching is case-folded and accepts the full name, a significant name token, or a known alias.
// @Tags        Game
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CheckGuessRequest  true  "Guess payload"
//
// @Success     200 {object} handlers.CheckGuessResponse
// @Failure     400 {object} handlers.ErrorResponse "Missing character name or guess"
// @Router      /check-guess [post]
func (h *Handlers) CheckGuess(c *gin.Context) {
	var req CheckGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "characterName and guess are required")
		return
	}
	ok(c, http.StatusOK, CheckGuessResponse{Match: game.IsMatch(req.Guess, req.CharacterName)})
}
