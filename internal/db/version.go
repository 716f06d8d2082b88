package db

import (
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/futbolpath/futbolpath/internal/db/migrations"
)

// SchemaVersion returns the highest migration version embedded in the binary.
func SchemaVersion() int64 {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return 0
	}

	var latest int64

	for _, name := range names {
		if v, err := goose.NumericComponent(name); err == nil && v > latest {
			latest = v
		}
	}

	return latest
}
