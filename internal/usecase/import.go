package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/course-kit/coursekit/internal/course"
	"github.com/course-kit/coursekit/internal/importer"
)

// ImportResult summarizes an import run.
type ImportResult struct {
	Imported []string
	Skipped  []string
}

// ImportAssignments scans an external folder for assignment-shaped subfolders
// and persists each as a new assignment. Folders whose title collides with an
// existing assignment are skipped and reported, not treated as failures.
func (s *Store) ImportAssignments(ctx context.Context, externalFolder string) (*ImportResult, error) {
	candidates, err := importer.Scan(externalFolder)
	if err != nil {
		s.logger.Error("import scan failed", zap.String("folder", externalFolder), zap.Error(err))
		return nil, err
	}

	result := &ImportResult{}
	for _, a := range candidates {
		id, err := s.AddAssignment(ctx, a)
		if err != nil {
			if errors.Is(err, course.ErrDuplicateTitle) {
				s.logger.Warn("import skipped duplicate", zap.String("title", a.Title))
				result.Skipped = append(result.Skipped, a.Title)
				continue
			}
			return result, err
		}
		result.Imported = append(result.Imported, id)
	}
	return result, nil
}
