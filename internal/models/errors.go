package models

import "errors"

// Sentinel errors for request validation.
var (
	ErrMissingPlayerID = errors.New("player id is required")
	ErrInvalidPlayerID = errors.New("invalid player id")
)

// ErrPlayerNotFound is returned by entity stores when no player has the given ID.
var ErrPlayerNotFound = errors.New("player not found")
