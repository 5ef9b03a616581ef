package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/course-kit/coursekit/internal/course"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		fileName    string
		content     course.FileContent
		fileType    course.FileType
		solution    bool
		showStudent bool
	}{
		{"main.py", course.ContentCode, course.FileCode, false, true},
		{"solution.py", course.ContentCode, course.FileCode, true, false},
		{"model_answer.java", course.ContentCode, course.FileCode, true, false},
		{"input.txt", course.ContentData, course.FileText, false, true},
		{"expected.txt", course.ContentResult, course.FileText, false, true},
		{"output.txt", course.ContentResult, course.FileText, false, true},
		{"notes.md", course.ContentInstruction, course.FileText, false, true},
		{"diagram.png", course.ContentData, course.FileImage, false, true},
		{"dataset.csv", course.ContentData, course.FileText, false, true},
	}

	for _, tt := range tests {
		record := ClassifyFile(tt.fileName, "/tmp/"+tt.fileName)
		if record.FileContent != tt.content {
			t.Errorf("%s: content %s, want %s", tt.fileName, record.FileContent, tt.content)
		}
		if record.FileType != tt.fileType {
			t.Errorf("%s: type %s, want %s", tt.fileName, record.FileType, tt.fileType)
		}
		if record.Solution != tt.solution {
			t.Errorf("%s: solution %v, want %v", tt.fileName, record.Solution, tt.solution)
		}
		if record.ShowStudent != tt.showStudent {
			t.Errorf("%s: showStudent %v, want %v", tt.fileName, record.ShowStudent, tt.showStudent)
		}
	}
}

func TestScanBuildsAssignments(t *testing.T) {
	root := t.TempDir()

	loops := filepath.Join(root, "for-loops")
	if err := os.MkdirAll(loops, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, loops, "README.md", "# For loops\nWrite a loop.")
	writeFile(t, loops, "main.py", "pass")
	writeFile(t, loops, "solution.py", "print('answer')")
	writeFile(t, loops, "input_1.txt", "3\n4\n")
	writeFile(t, loops, "output_1.txt", "7")

	// A folder without markdown is not an assignment.
	scratch := filepath.Join(root, "scratch")
	if err := os.MkdirAll(scratch, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, scratch, "junk.py", "pass")

	// Loose files at the top level are ignored.
	writeFile(t, root, "stray.md", "not an assignment")

	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(result))
	}

	a := result[0]
	if a.Title != "for-loops" {
		t.Fatalf("title: %s", a.Title)
	}
	if a.CodeLanguage != "python" {
		t.Fatalf("language not inferred from non-solution code file: %s", a.CodeLanguage)
	}

	variation, ok := a.Variations["A"]
	if !ok {
		t.Fatalf("default variation missing")
	}
	if variation.Instructions == "" {
		t.Fatalf("instructions not captured from markdown")
	}
	if len(variation.Files) != 2 {
		t.Fatalf("expected main.py and solution.py as files, got %d", len(variation.Files))
	}

	run, ok := variation.ExampleRuns["1"]
	if !ok {
		t.Fatalf("example run 1 missing")
	}
	if len(run.Inputs) != 2 || run.Inputs[0] != "3" {
		t.Fatalf("inputs not split by line: %v", run.Inputs)
	}
	if run.Output != "7" {
		t.Fatalf("output not captured: %q", run.Output)
	}
}

func TestScanSortsByTitle(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zebra", "apple", "mango"} {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		writeFile(t, dir, "README.md", "# "+name)
	}

	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(result))
	}
	for i, want := range []string{"apple", "mango", "zebra"} {
		if result[i].Title != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, result[i].Title)
		}
	}
}

func TestSolutionLanguageNotPreferred(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "mixed")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, dir, "README.md", "# Mixed")
	writeFile(t, dir, "solution.go", "package main")
	writeFile(t, dir, "starter.py", "pass")

	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(result))
	}
	if result[0].CodeLanguage != "python" {
		t.Fatalf("language must come from non-solution files, got %s", result[0].CodeLanguage)
	}
}
