package client

import (
	"context"
	"net/url"
	"strconv"
)

// PathService finds teammate paths.
type PathService struct {
	c *Client
}

// Find returns the shortest teammate path between two player IDs. A missing
// connection is a normal result with Found false, not an error.
func (s *PathService) Find(ctx context.Context, fromID, toID int64) (*PathResult, error) {
	params := url.Values{}
	params.Set("from", strconv.FormatInt(fromID, 10))
	params.Set("to", strconv.FormatInt(toID, 10))

	var resp PathResult
	if err := s.c.get(ctx, "/api/v1/path", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
