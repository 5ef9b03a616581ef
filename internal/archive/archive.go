// Package archive implements the filesystem side of the assignment store:
// one folder per assignment under <course>/assignment_data/<id>, holding the
// metadata JSON and one subdirectory of material files per variation.
package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/course-kit/coursekit/internal/config"
	"github.com/course-kit/coursekit/internal/course"
)

// CreateAssignmentFolder creates the archive folder for an assignment. When
// overwrite is set (a fresh save) an existing folder is removed first; update
// paths must never pass overwrite, so a stale folder surfaces as-is.
func CreateAssignmentFolder(courseRoot, id string, overwrite bool) (string, error) {
	path := config.AssignmentPath(courseRoot, id)

	if overwrite {
		if _, err := os.Stat(path); err == nil {
			if err := RemovePath(path); err != nil {
				return "", err
			}
		}
	}

	if err := os.MkdirAll(path, 0o750); err != nil {
		return "", fmt.Errorf("create assignment folder: %w", err)
	}
	return path, nil
}

// WriteMetadata serializes the full assignment to <id>/<id>.json. File paths
// inside the assignment must already be course-relative.
func WriteMetadata(courseRoot string, a *course.Assignment) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize assignment %s: %w", a.ID, err)
	}

	path := MetadataPath(courseRoot, a.ID)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write metadata for %s: %w", a.ID, err)
	}
	return nil
}

// MetadataPath returns the metadata JSON path for an assignment ID.
func MetadataPath(courseRoot, id string) string {
	return filepath.Join(config.AssignmentPath(courseRoot, id), id+".json")
}

// ReadAssignment loads a single assignment from its archive folder.
func ReadAssignment(courseRoot, id string) (*course.Assignment, error) {
	data, err := os.ReadFile(MetadataPath(courseRoot, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("assignment %s: %w", id, course.ErrNotFound)
		}
		return nil, fmt.Errorf("read metadata for %s: %w", id, err)
	}

	var a course.Assignment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse metadata for %s: %w", id, err)
	}
	return &a, nil
}

// ReadAssignments enumerates the archive and returns every stored assignment,
// optionally restricted to the given IDs. Directories without a readable
// metadata file are reported as errors, not skipped.
func ReadAssignments(courseRoot string, ids ...string) ([]*course.Assignment, error) {
	if len(ids) > 0 {
		result := make([]*course.Assignment, 0, len(ids))
		for _, id := range ids {
			a, err := ReadAssignment(courseRoot, id)
			if err != nil {
				return nil, err
			}
			result = append(result, a)
		}
		return result, nil
	}

	root := config.AssignmentDataPath(courseRoot)
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read archive root: %w", err)
	}

	result := make([]*course.Assignment, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		a, err := ReadAssignment(courseRoot, entry.Name())
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Exists reports whether an assignment folder is present in the archive.
func Exists(courseRoot, id string) bool {
	_, err := os.Stat(MetadataPath(courseRoot, id))
	return err == nil
}

// RemovePath recursively deletes a path. It refuses any path outside the
// assignment data tree: the path string must contain the marker directory
// name, which keeps a bad join from wiping unrelated filesystem locations.
func RemovePath(path string) error {
	if !strings.Contains(path, config.AssignmentDataDir) {
		return fmt.Errorf("refusing to remove %q: outside %s", path, config.AssignmentDataDir)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// SyncVariationFiles brings the variation subdirectories in line with the
// assignment's file lists. Files whose path still points outside the archive
// are copied in and their in-memory path rewritten to be course-relative;
// files already inside the archive are verified to exist. Anything physically
// present but not referenced is pruned, including whole directories of
// variations dropped from the assignment.
func SyncVariationFiles(courseRoot string, a *course.Assignment) error {
	archivePath := config.AssignmentPath(courseRoot, a.ID)

	keys := make([]string, 0, len(a.Variations))
	for key := range a.Variations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		variation := a.Variations[key]
		varDir := filepath.Join(archivePath, key)
		if err := os.MkdirAll(varDir, 0o750); err != nil {
			return fmt.Errorf("create variation dir %s/%s: %w", a.ID, key, err)
		}

		referenced := make(map[string]bool, len(variation.Files))
		for i := range variation.Files {
			file := &variation.Files[i]
			if err := syncFile(courseRoot, varDir, file); err != nil {
				return fmt.Errorf("variation %s/%s: %w", a.ID, key, err)
			}
			referenced[file.FileName] = true
		}
		a.Variations[key] = variation

		if err := pruneDir(varDir, referenced); err != nil {
			return fmt.Errorf("prune variation %s/%s: %w", a.ID, key, err)
		}
	}

	entries, err := os.ReadDir(archivePath)
	if err != nil {
		return fmt.Errorf("read assignment folder %s: %w", a.ID, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, ok := a.Variations[entry.Name()]; ok {
			continue
		}
		if err := RemovePath(filepath.Join(archivePath, entry.Name())); err != nil {
			return fmt.Errorf("prune dropped variation %s/%s: %w", a.ID, entry.Name(), err)
		}
	}
	return nil
}

// syncFile copies an external file into the variation directory, or verifies
// a file that already lives inside the archive. A referenced file missing on
// disk is an error surfaced to the caller.
func syncFile(courseRoot, varDir string, file *course.FileRecord) error {
	inArchive := !filepath.IsAbs(file.Path) &&
		strings.Contains(filepath.ToSlash(file.Path), config.AssignmentDataDir+"/")

	if inArchive {
		if _, err := os.Stat(filepath.Join(courseRoot, file.Path)); err != nil {
			return fmt.Errorf("referenced file %s missing: %w", file.Path, err)
		}
		return nil
	}

	source := file.Path
	if !filepath.IsAbs(source) {
		source = filepath.Join(courseRoot, source)
	}
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("referenced file %s missing: %w", file.Path, err)
	}

	dest := filepath.Join(varDir, file.FileName)
	if err := copyFile(source, dest); err != nil {
		return err
	}

	rel, err := filepath.Rel(courseRoot, dest)
	if err != nil {
		return fmt.Errorf("relativize %s: %w", dest, err)
	}
	file.Path = filepath.ToSlash(rel)
	return nil
}

func pruneDir(dir string, referenced map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open %s: %w", source, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", source, err)
	}
	return out.Close()
}
