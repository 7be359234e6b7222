// Score HTTP handlers.
//
// This file exposes the score ledger endpoints:
//   - POST /scores  (submit a score, authenticated)
//   - GET  /scores  (leaderboard, public)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniguessr/anime-guessr-backend/internal/domain"
	"github.com/aniguessr/anime-guessr-backend/internal/http/middleware"
	"github.com/aniguessr/anime-guessr-backend/internal/services"
	"github.com/aniguessr/anime-guessr-backend/internal/utils"
)

// SubmitScoreRequest is the JSON payload for submitting a score.
type SubmitScoreRequest struct {
	// Score is the points earned this session; must be >= 0.
	Score *int `json:"score" binding:"required" example:"120"`
	// Difficulty the session was played at: easy, normal, or hard.
	// Defaults to normal.
	Difficulty string `json:"difficulty,omitempty" example:"normal"`
}

// SubmitScoreResponse echoes the persisted row.
type SubmitScoreResponse struct {
	Success bool          `json:"success" example:"true"`
	Score   *domain.Score `json:"score"`
}

// LeaderboardResponse is the payload of GET /scores.
type LeaderboardResponse struct {
	Leaderboard []domain.Score `json:"leaderboard"`
	Period      string         `json:"period" example:"week"`
}

// SubmitScore godoc
// @ID          submitScore
// @Summary     Submit a score
// @Description Records one score row for the authenticated user. Every submission is its own row; the leaderboard ranks rows, not users.
// @Tags        Scores
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.SubmitScoreRequest  true  "Score payload"
//
// @Success     201 {object} handlers.SubmitScoreResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid score or difficulty"
// @Failure     401 {object} handlers.ErrorResponse "Missing or invalid credentials"
// @Failure     500 {object} handlers.ErrorResponse "Persistence failure"
// @Router      /scores [post]
func (h *Handlers) SubmitScore(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "score is required and must be a number")
		return
	}

	score, err := h.scoreSvc.Submit(c.Request.Context(), uid, *req.Score, req.Difficulty)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScore):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "score must not be negative")
		case errors.Is(err, services.ErrInvalidDifficulty):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "difficulty must be easy, normal, or hard")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, "could not save score")
		}
		return
	}

	middleware.ScoreSubmissions.WithLabelValues(score.Difficulty).Inc()
	ok(c, http.StatusCreated, SubmitScoreResponse{Success: true, Score: score})
}

// Leaderboard godoc
// @ID          leaderboard
// @Summary     Get the leaderboard
// @Description Returns the top scores for a period, sorted by score descending.
// @Tags        Scores
// @Produce     json
//
// @Param       period  query  string  false  "Time window"  Enums(all, week, month)  default(all)
// @Param       limit   query  int     false  "Max rows (1-100)"  default(10)
//
// @Success     200 {object} handlers.LeaderboardResponse
// @Failure     400 {object} handlers.ErrorResponse "Unknown period"
// @Failure     500 {object} handlers.ErrorResponse "Query failure"
// @Router      /scores [get]
func (h *Handlers) Leaderboard(c *gin.Context) {
	period := c.DefaultQuery("period", "all")
	limit := utils.AtoiDefault(c.Query("limit"), 0)

	rows, err := h.scoreSvc.Leaderboard(c.Request.Context(), period, limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "period must be all, week, or month")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not load leaderboard")
		return
	}

	if rows == nil {
		rows = []domain.Score{}
	}
	ok(c, http.StatusOK, LeaderboardResponse{Leaderboard: rows, Period: period})
}
