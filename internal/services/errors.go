// Package services defines the business logic for scores, plays, and streaks.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

var (
	// ErrInvalidScore is returned when a submitted score is negative.
	ErrInvalidScore = errors.New("score must be a non-negative number")

	// ErrInvalidPeriod is returned when a leaderboard period is not one of
	// "all", "week", or "month".
	ErrInvalidPeriod = errors.New("period must be one of: all, week, month")

	// ErrInvalidDifficulty is returned when a difficulty value is outside
	// the allowed set (easy, normal, hard).
	ErrInvalidDifficulty = errors.New("difficulty must be one of: easy, normal, hard")
)
