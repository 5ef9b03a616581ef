package database

import (
	"os"
	"testing"

	"github.com/course-kit/coursekit/internal/config"
)

func TestOpenCreatesAndMigrates(t *testing.T) {
	courseRoot := t.TempDir()

	dbCtx, err := Open(courseRoot)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() {
		_ = Close(dbCtx)
	}()

	if _, err := os.Stat(config.DatabasePath(courseRoot)); err != nil {
		t.Fatalf("database file not created: %v", err)
	}

	for _, table := range []string{"assignments", "modules", "assignment_tags", "module_tags"} {
		var name string
		err := dbCtx.DB.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing after migration: %v", table, err)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	courseRoot := t.TempDir()

	first, err := Open(courseRoot)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := Close(first); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening an already migrated database must not fail.
	second, err := Open(courseRoot)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	_ = Close(second)
}

func TestForeignKeysEnforced(t *testing.T) {
	dbCtx := setupTestDB(t)

	_, err := dbCtx.DB.Exec("INSERT INTO assignment_tags (tag, assignment_id) VALUES ('x', 'missing')")
	if err == nil {
		t.Fatalf("expected foreign key violation for unknown assignment")
	}
}
