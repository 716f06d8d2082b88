package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/futbolpath/futbolpath/internal/models"
)

// Search limits.
const (
	MinQueryLength     = 2
	DefaultSearchLimit = 10
	MaxSearchLimit     = 20
)

// SearchService resolves free-text names to player candidates.
type SearchService struct {
	store EntityStore
	log   *logrus.Logger
}

// NewSearchService creates a SearchService.
func NewSearchService(store EntityStore, log *logrus.Logger) *SearchService {
	return &SearchService{store: store, log: log}
}

// SearchPlayers returns players whose normalized name contains the query,
// prefix matches first. Queries shorter than MinQueryLength runes return an
// empty result.
func (s *SearchService) SearchPlayers(ctx context.Context, query string, limit int) (*models.PlayerSearchResult, error) {
	normalized := NormalizeName(query)
	if utf8.RuneCountInString(normalized) < MinQueryLength {
		return &models.PlayerSearchResult{Players: []models.Player{}}, nil
	}

	players, err := s.store.SearchPlayers(ctx, normalized, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}

	if players == nil {
		players = []models.Player{}
	}

	s.log.WithFields(logrus.Fields{
		"query":   normalized,
		"results": len(players),
	}).Debug("player search")

	return &models.PlayerSearchResult{Players: players, Total: len(players)}, nil
}

// ClampLimit applies the default and the cap to a requested result count.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSearchLimit
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return limit
	}
}

// NormalizeName folds a name the same way the stored name_normalized column
// is folded: trimmed, lowercased, decomposed, with combining marks removed.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}
