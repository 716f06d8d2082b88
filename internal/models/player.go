// Package models defines data types shared by the graph core, the stores,
// and the HTTP façade.
package models

import (
	"fmt"
	"strconv"
)

// PlayerID identifies one player node. IDs are non-negative and stable for
// the lifetime of a dataset.
type PlayerID int64

// ParsePlayerID parses a decimal player ID from request input.
func ParsePlayerID(s string) (PlayerID, error) {
	if s == "" {
		return 0, ErrMissingPlayerID
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlayerID, s)
	}

	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidPlayerID, v)
	}

	return PlayerID(v), nil
}

// Player holds the display attributes of a player as stored in the entity store.
type Player struct {
	ID          PlayerID `json:"id"`
	Name        string   `json:"name"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Position    string   `json:"position,omitempty"`
	Country     string   `json:"country,omitempty"`
	CurrentClub string   `json:"currentClub,omitempty"`
}

// PlayerSearchResult is the payload returned by name search.
type PlayerSearchResult struct {
	Players []Player `json:"players"`
	Total   int      `json:"total"`
}
