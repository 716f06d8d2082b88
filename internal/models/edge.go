package models

// Edge is an unordered teammate relation between two players.
// Edges carry no weight or label; duplicates collapse when the graph is built.
type Edge struct {
	A PlayerID `json:"a"`
	B PlayerID `json:"b"`
}

// IsSelfLoop reports whether both ends of the edge are the same player.
func (e Edge) IsSelfLoop() bool { return e.A == e.B }
