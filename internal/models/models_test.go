package models_test

import (
	"errors"
	"testing"

	"github.com/futbolpath/futbolpath/internal/models"
)

func TestParsePlayerID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    models.PlayerID
		wantErr error
	}{
		{name: "zero", in: "0", want: 0},
		{name: "positive", in: "28003", want: 28003},
		{name: "empty", in: "", wantErr: models.ErrMissingPlayerID},
		{name: "not a number", in: "messi", wantErr: models.ErrInvalidPlayerID},
		{name: "negative", in: "-4", wantErr: models.ErrInvalidPlayerID},
		{name: "float", in: "1.5", wantErr: models.ErrInvalidPlayerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParsePlayerID(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePlayerID(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParsePlayerID(%q): %v", tt.in, err)
			}

			if got != tt.want {
				t.Errorf("ParsePlayerID(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestEdge_IsSelfLoop(t *testing.T) {
	if !(models.Edge{A: 3, B: 3}).IsSelfLoop() {
		t.Error("edge 3-3 should be a self loop")
	}

	if (models.Edge{A: 3, B: 4}).IsSelfLoop() {
		t.Error("edge 3-4 should not be a self loop")
	}
}

func TestNotFound_EmptyPath(t *testing.T) {
	r := models.NotFound(models.SearchStats{NodesExplored: 12})

	if r.Found {
		t.Error("NotFound result must not be found")
	}

	if r.Path == nil || len(r.Path) != 0 {
		t.Errorf("expected empty non-nil path, got %v", r.Path)
	}

	if r.Degrees != 0 {
		t.Errorf("Degrees = %d, want 0", r.Degrees)
	}

	if r.Stats.NodesExplored != 12 {
		t.Errorf("NodesExplored = %d, want 12", r.Stats.NodesExplored)
	}
}
