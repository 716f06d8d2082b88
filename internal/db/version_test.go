package db_test

import (
	"testing"

	"github.com/futbolpath/futbolpath/internal/db"
)

func TestSchemaVersion(t *testing.T) {
	if got := db.SchemaVersion(); got != 3 {
		t.Errorf("SchemaVersion = %d, want 3", got)
	}
}
