// Play HTTP handlers.
//
// This file exposes the daily-play streak endpoints:
//   - POST /plays  (record today's play, authenticated, idempotent per day)
//   - GET  /plays  (current streak and total plays, authenticated)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
	"github.com/aniguessr/anime-guessr-backend/internal/services"
)

// RecordPlayRequest is the JSON payload for recording a play.
type RecordPlayRequest struct {
	// Difficulty of today's session: easy, normal, or hard. Defaults to
	// normal.
	Difficulty string `json:"difficulty,omitempty" example:"normal"`
}

// RecordPlayResponse echoes the day's play row.
type RecordPlayResponse struct {
	Success bool         `json:"success" example:"true"`
	Data    *domain.Play `json:"data"`
}

// PlayStatsResponse is the payload of GET /plays.
type PlayStatsResponse struct {
	CurrentStreak int   `json:"currentStreak" example:"4"`
	TotalPlays    int64 `json:"totalPlays" example:"31"`
}

// RecordPlay godoc
// @ID          recordPlay
// @Summary     Record today's play
// @Description Registers that the authenticated user played today. The first call of a UTC day writes a row carrying yesterday's streak + 1 (or 1 after a gap); repeat calls the same day return the existing row unchanged.
// @Tags        Plays
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.RecordPlayRequest  false  "Play payload"
//
// @Success     200 {object} handlers.RecordPlayResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid difficulty"
// @Failure     401 {object} handlers.ErrorResponse "Missing or invalid credentials"
// @Failure     500 {object} handlers.ErrorResponse "Persistence failure"
// @Router      /plays [post]
func (h *Handlers) RecordPlay(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	// Empty body is fine: difficulty defaults downstream.
	var req RecordPlayRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid payload")
			return
		}
	}

	play, err := h.playSvc.Record(c.Request.Context(), uid, req.Difficulty)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDifficulty) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "difficulty must be easy, normal, or hard")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, "could not record play")
		return
	}

	ok(c, http.StatusOK, RecordPlayResponse{Success: true, Data: play})
}

// PlayStats godoc
// @ID          playStats
// @Summary     Get streak statistics
// @Description Returns the authenticated user's current daily streak and total recorded play days.
// @Tags        Plays
// @Produce     json
// @Security    BearerAuth
//
// @Success     200 {object} handlers.PlayStatsResponse
// @Failure     401 {object} handlers.ErrorResponse "Missing or invalid credentials"
// @Failure     500 {object} handlers.ErrorResponse "Query failure"
// @Router      /plays [get]
func (h *Handlers) PlayStats(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	streak, total, err := h.playSvc.Stats(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not load statistics")
		return
	}

	ok(c, http.StatusOK, PlayStatsResponse{CurrentStreak: streak, TotalPlays: total})
}
