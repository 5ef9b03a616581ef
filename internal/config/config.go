// Package config resolves course directories and the on-disk course layout.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AssignmentDataDir is the marker directory holding one folder per assignment.
// Destructive filesystem operations refuse paths that do not contain it.
const AssignmentDataDir = "assignment_data"

// DatabaseDir holds the SQLite index inside a course root.
const DatabaseDir = "database"

// ResolveCourseRoot picks the course directory for CLI operations. An explicit
// path wins, then COURSEKIT_COURSE, then the working directory.
func ResolveCourseRoot(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if env := os.Getenv("COURSEKIT_COURSE"); env != "" {
		return filepath.Abs(env)
	}
	return os.Getwd()
}

// DefaultStateDir returns the tool-level state directory (logs, caches).
func DefaultStateDir() string {
	xdg.Reload()
	dataHome := xdg.DataHome
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "coursekit")
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "coursekit")
}

// DatabasePath returns the SQLite index path for a course.
func DatabasePath(courseRoot string) string {
	return filepath.Join(courseRoot, DatabaseDir, "database.db")
}

// AssignmentDataPath returns the archive root for a course.
func AssignmentDataPath(courseRoot string) string {
	return filepath.Join(courseRoot, AssignmentDataDir)
}

// AssignmentPath returns the archive folder for one assignment ID.
func AssignmentPath(courseRoot, id string) string {
	return filepath.Join(AssignmentDataPath(courseRoot), id)
}

// CourseInfoPath returns the course metadata file path.
func CourseInfoPath(courseRoot string) string {
	return filepath.Join(courseRoot, "course_info.json")
}

// CourseInfo mirrors course_info.json.
type CourseInfo struct {
	Name         string   `json:"name"`
	CodeLanguage string   `json:"codeLanguage"`
	Levels       []string `json:"levels,omitempty"`
	Periods      []string `json:"periods,omitempty"`
}

// ReadCourseInfo loads course_info.json if present. A missing file is not an
// error; the zero value is returned.
func ReadCourseInfo(courseRoot string) (CourseInfo, error) {
	var info CourseInfo
	data, err := os.ReadFile(CourseInfoPath(courseRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return info, err
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, err
	}
	return info, nil
}

// WriteCourseInfo persists course_info.json.
func WriteCourseInfo(courseRoot string, info CourseInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(CourseInfoPath(courseRoot), data, 0o600)
}
