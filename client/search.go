package client

import (
	"context"
	"net/url"
	"strconv"
)

// SearchService resolves player names.
type SearchService struct {
	c *Client
}

// Players searches players by name. limit <= 0 uses the server default.
func (s *SearchService) Players(ctx context.Context, query string, limit int) (*PlayerSearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp PlayerSearchResult
	if err := s.c.get(ctx, "/api/v1/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
