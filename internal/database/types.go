package database

import "time"

// AssignmentRecord represents a row in the assignments table joined with its
// tag memberships. IsExpanding is derived from the assignment's next/previous
// links at write time and normalized to a boolean on read.
type AssignmentRecord struct {
	ID           string
	Type         string
	Title        string
	Tags         []string
	Module       *int64
	ModuleName   string
	Position     []int
	Level        *int64
	IsExpanding  bool
	CodeLanguage string
	RelativePath string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ModuleRecord represents a row in the modules table with its tag
// memberships.
type ModuleRecord struct {
	ID           int64
	Name         string
	Tags         []string
	Assignments  int64
	Subjects     string
	Letters      bool
	Instructions string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TagRecord is one tag and the owner IDs holding it within a tag space.
type TagRecord struct {
	Name   string
	Owners []string
}
