package course

import "testing"

func sampleAssignment() *Assignment {
	module := int64(1)
	return &Assignment{
		Title:        "For loops",
		Type:         TypeAssignment,
		Tags:         []string{"loops", "basics"},
		Module:       &module,
		Position:     []int{1, 2},
		CodeLanguage: "python",
		Variations: map[string]Variation{
			"A": {
				Instructions: "Write a for loop.",
				ExampleRuns: map[string]ExampleRun{
					"1": {Inputs: []string{"3"}, Output: "0 1 2"},
				},
				Files: []FileRecord{
					{FileName: "loop.py", Path: "/tmp/loop.py", FileContent: ContentCode, FileType: FileCode, ShowStudent: true},
				},
				UsedIn: []string{"2024p1"},
			},
		},
	}
}

func TestComputeIDDeterministic(t *testing.T) {
	a := sampleAssignment()

	first, err := ComputeID(a)
	if err != nil {
		t.Fatalf("ComputeID error: %v", err)
	}
	second, err := ComputeID(a)
	if err != nil {
		t.Fatalf("ComputeID second call error: %v", err)
	}
	if first != second {
		t.Fatalf("hash not deterministic: %s != %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected sha256 hex digest, got %q", first)
	}
}

func TestComputeIDIgnoresExistingID(t *testing.T) {
	a := sampleAssignment()
	withoutID, err := ComputeID(a)
	if err != nil {
		t.Fatalf("ComputeID error: %v", err)
	}

	a.ID = "deadbeef"
	withID, err := ComputeID(a)
	if err != nil {
		t.Fatalf("ComputeID error: %v", err)
	}
	if withoutID != withID {
		t.Fatalf("ID field must not affect the hash")
	}
}

func TestComputeIDChangesWithContent(t *testing.T) {
	a := sampleAssignment()
	original, err := ComputeID(a)
	if err != nil {
		t.Fatalf("ComputeID error: %v", err)
	}

	a.Title = "While loops"
	changed, err := ComputeID(a)
	if err != nil {
		t.Fatalf("ComputeID error: %v", err)
	}
	if original == changed {
		t.Fatalf("changing the title must change the hash")
	}

	a = sampleAssignment()
	a.Tags = append(a.Tags, "extra")
	changed, err = ComputeID(a)
	if err != nil {
		t.Fatalf("ComputeID error: %v", err)
	}
	if original == changed {
		t.Fatalf("changing tags must change the hash")
	}
}

func TestIsExpandingDerived(t *testing.T) {
	a := sampleAssignment()
	if a.IsExpanding() {
		t.Fatalf("assignment without links must not be expanding")
	}

	a.Next = []string{"abc123"}
	if !a.IsExpanding() {
		t.Fatalf("assignment with next link must be expanding")
	}

	a.Next = nil
	a.Previous = []string{"def456"}
	if !a.IsExpanding() {
		t.Fatalf("assignment with previous link must be expanding")
	}
}
