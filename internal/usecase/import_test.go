package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/course-kit/coursekit/internal/archive"
	"github.com/course-kit/coursekit/internal/course"
)

func writeImportFolder(t *testing.T, root, name string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# "+name), 0o600); err != nil {
		t.Fatalf("write README: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "main.py"), []byte("pass"), 0o600); err != nil {
		t.Fatalf("write main.py: %v", err)
	}
}

func TestImportAssignments(t *testing.T) {
	store, courseRoot := setupStore(t)
	ctx := context.Background()

	external := t.TempDir()
	writeImportFolder(t, external, "for-loops")
	writeImportFolder(t, external, "while-loops")

	result, err := store.ImportAssignments(ctx, external)
	if err != nil {
		t.Fatalf("ImportAssignments: %v", err)
	}
	if len(result.Imported) != 2 || len(result.Skipped) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	for _, id := range result.Imported {
		if !archive.Exists(courseRoot, id) {
			t.Fatalf("imported assignment %s missing from archive", id)
		}
		stored, err := archive.ReadAssignment(courseRoot, id)
		if err != nil {
			t.Fatalf("ReadAssignment: %v", err)
		}
		// Material files were copied into the archive during the save.
		files := stored.Variations["A"].Files
		if len(files) != 1 {
			t.Fatalf("expected 1 material file, got %d", len(files))
		}
		if _, err := os.Stat(filepath.Join(courseRoot, filepath.FromSlash(files[0].Path))); err != nil {
			t.Fatalf("material file not copied: %v", err)
		}
	}

	rows, err := store.FilteredAssignments(ctx, course.Filter{})
	if err != nil {
		t.Fatalf("FilteredAssignments: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 indexed rows, got %d", len(rows))
	}
}

func TestImportSkipsDuplicateTitles(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	external := t.TempDir()
	writeImportFolder(t, external, "for-loops")

	if _, err := store.ImportAssignments(ctx, external); err != nil {
		t.Fatalf("first import: %v", err)
	}

	result, err := store.ImportAssignments(ctx, external)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if len(result.Imported) != 0 {
		t.Fatalf("duplicate titles must not be re-imported: %+v", result)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "for-loops" {
		t.Fatalf("duplicate must be reported as skipped: %+v", result)
	}
}
