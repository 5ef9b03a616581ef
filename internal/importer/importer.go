// Package importer scans an external folder tree and synthesizes assignment
// records from its files, classifying them by filename conventions.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/course-kit/coursekit/internal/course"
)

// defaultVariation is the variation key assigned to imported material.
const defaultVariation = "A"

var (
	solutionPattern = regexp.MustCompile(`(?i)solution|answer|model`)
	dataPattern     = regexp.MustCompile(`(?i)input|data`)
	resultPattern   = regexp.MustCompile(`(?i)output|result|expected`)
	examplePattern  = regexp.MustCompile(`(?i)^(input|output)[_-]?(\d+)$`)
)

var codeExtensions = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
	".c":    "c",
	".cpp":  "cpp",
	".cs":   "csharp",
	".rb":   "ruby",
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".bmp":  true,
}

// Scan walks the external folder and returns one assignment per subfolder
// that contains a markdown file. File paths in the result are absolute, so a
// subsequent save copies the material into the archive.
func Scan(externalFolder string) ([]*course.Assignment, error) {
	entries, err := os.ReadDir(externalFolder)
	if err != nil {
		return nil, fmt.Errorf("read import folder: %w", err)
	}

	var result []*course.Assignment
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		a, err := scanFolder(filepath.Join(externalFolder, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}
		if a != nil {
			result = append(result, a)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Title < result[j].Title })
	return result, nil
}

// scanFolder builds one assignment from a candidate folder, or nil when the
// folder holds no markdown instructions.
func scanFolder(dir, name string) (*course.Assignment, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var (
		instructions string
		files        []course.FileRecord
		exampleRuns  = map[string]course.ExampleRun{}
		language     string
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		path := filepath.Join(dir, fileName)
		ext := strings.ToLower(filepath.Ext(fileName))
		base := strings.TrimSuffix(fileName, ext)

		// First markdown file becomes the instructions text.
		if ext == ".md" && instructions == "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read instructions %s: %w", path, err)
			}
			instructions = string(data)
			continue
		}

		// input_N/output_N pairs become example runs.
		if match := examplePattern.FindStringSubmatch(base); match != nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read example %s: %w", path, err)
			}
			run := exampleRuns[match[2]]
			if strings.EqualFold(match[1], "input") {
				run.Inputs = splitLines(string(data))
			} else {
				run.Output = string(data)
			}
			exampleRuns[match[2]] = run
			continue
		}

		if lang, ok := codeExtensions[ext]; ok && language == "" && !solutionPattern.MatchString(base) {
			language = lang
		}
		files = append(files, ClassifyFile(fileName, path))
	}

	if instructions == "" {
		return nil, nil
	}

	return &course.Assignment{
		Title:        name,
		Type:         course.TypeAssignment,
		Tags:         []string{},
		CodeLanguage: language,
		Variations: map[string]course.Variation{
			defaultVariation: {
				Instructions: instructions,
				ExampleRuns:  exampleRuns,
				Files:        files,
				UsedIn:       []string{},
			},
		},
	}, nil
}

// ClassifyFile applies the fixed filename rule table: extension decides the
// file type, basename shape decides the solution/showStudent flags and the
// content class.
func ClassifyFile(fileName, path string) course.FileRecord {
	ext := strings.ToLower(filepath.Ext(fileName))
	base := strings.TrimSuffix(fileName, ext)

	record := course.FileRecord{
		FileName:    fileName,
		Path:        path,
		FileType:    course.FileText,
		FileContent: course.ContentData,
		ShowStudent: true,
	}

	switch {
	case imageExtensions[ext]:
		record.FileType = course.FileImage
	case ext == ".md":
		record.FileContent = course.ContentInstruction
	default:
		if _, ok := codeExtensions[ext]; ok {
			record.FileType = course.FileCode
			record.FileContent = course.ContentCode
		}
	}

	switch {
	case solutionPattern.MatchString(base):
		record.Solution = true
		record.ShowStudent = false
		record.FileContent = course.ContentCode
	case resultPattern.MatchString(base):
		record.FileContent = course.ContentResult
	case dataPattern.MatchString(base):
		record.FileContent = course.ContentData
	}

	return record
}

func splitLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(trimmed, "\r\n", "\n"), "\n")
}
