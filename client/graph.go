package client

import "context"

// GraphService reads cached graph diagnostics.
type GraphService struct {
	c *Client
}

// Stats returns the state of the server's teammate graph.
func (s *GraphService) Stats(ctx context.Context) (*GraphStats, error) {
	var resp GraphStats
	if err := s.c.get(ctx, "/api/v1/graph/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
