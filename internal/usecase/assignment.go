package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/course-kit/coursekit/internal/archive"
	"github.com/course-kit/coursekit/internal/config"
	"github.com/course-kit/coursekit/internal/course"
	"github.com/course-kit/coursekit/internal/database"
	"github.com/course-kit/coursekit/internal/services"
)

// AddAssignment persists a new assignment: the content hash becomes its ID,
// the archive folder is created, variation files are synced in, and the
// relational row plus tag memberships are committed last. Returns the
// assigned ID.
func (s *Store) AddAssignment(ctx context.Context, a *course.Assignment) (string, error) {
	id, err := s.saveAssignment(ctx, a, false)
	if err != nil {
		s.logger.Error("add assignment failed", zap.String("title", a.Title), zap.Error(err))
		return "", err
	}
	return id, nil
}

// UpdateAssignment rewrites an already persisted assignment in place, keyed
// by its existing ID.
func (s *Store) UpdateAssignment(ctx context.Context, a *course.Assignment) error {
	if _, err := s.saveAssignment(ctx, a, true); err != nil {
		s.logger.Error("update assignment failed", zap.String("id", a.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) saveAssignment(ctx context.Context, input *course.Assignment, isUpdate bool) (string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return "", fmt.Errorf("assignment title must not be empty: %w", course.ErrValidation)
	}

	// Work on a deep copy; path rewriting must not leak into the caller.
	a := input.Clone()
	svc := services.NewAssignmentService(s.dbCtx)

	if isUpdate {
		if a.ID == "" {
			return "", fmt.Errorf("update requires an assignment id: %w", course.ErrValidation)
		}
		// Fail before touching the archive when the row is missing.
		row, err := database.NewAssignmentRepository(s.dbCtx).FindByID(ctx, a.ID)
		if err != nil {
			return "", err
		}
		if row == nil {
			return "", fmt.Errorf("assignment %s: %w", a.ID, course.ErrNotFound)
		}
		// Retitling onto a title held by another assignment is rejected
		// here rather than left to the unique constraint.
		inUse, err := svc.TitleInUse(ctx, a.Title, a.ID)
		if err != nil {
			return "", err
		}
		if inUse {
			return "", fmt.Errorf("assignment %q: %w", a.Title, course.ErrDuplicateTitle)
		}
	} else {
		inUse, err := svc.TitleInUse(ctx, a.Title, "")
		if err != nil {
			return "", err
		}
		if inUse {
			return "", fmt.Errorf("assignment %q: %w", a.Title, course.ErrDuplicateTitle)
		}
		if a.ID == "" {
			id, err := course.ComputeID(a)
			if err != nil {
				return "", err
			}
			a.ID = id
		}
	}

	unlock := s.lockID(a.ID)
	defer unlock()

	if !isUpdate {
		if _, err := archive.CreateAssignmentFolder(s.courseRoot, a.ID, true); err != nil {
			return "", err
		}
	} else if !archive.Exists(s.courseRoot, a.ID) {
		// Refuse a silently-destructive overwrite: updates require the
		// folder created by the original save.
		if _, err := archive.CreateAssignmentFolder(s.courseRoot, a.ID, false); err != nil {
			return "", err
		}
	}

	if err := archive.SyncVariationFiles(s.courseRoot, a); err != nil {
		return "", err
	}
	if err := archive.WriteMetadata(s.courseRoot, a); err != nil {
		return "", err
	}

	relPath := relativeArchivePath(a.ID)
	if isUpdate {
		if err := svc.Update(ctx, a, relPath); err != nil {
			return "", err
		}
	} else {
		if err := svc.Insert(ctx, a, relPath); err != nil {
			return "", err
		}
	}

	s.logger.Debug("assignment saved",
		zap.String("id", a.ID),
		zap.Bool("update", isUpdate),
	)
	return a.ID, nil
}

// GetAssignments reads assignments from the archive, all of them or only the
// given IDs.
func (s *Store) GetAssignments(_ context.Context, ids ...string) ([]*course.Assignment, error) {
	result, err := archive.ReadAssignments(s.courseRoot, ids...)
	if err != nil {
		s.logger.Error("read assignments failed", zap.Strings("ids", ids), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// DeleteAssignments removes each assignment's archive folder, relational row,
// and tag memberships. The batch is best-effort: a failure on one ID does not
// roll back earlier deletions; the first error is returned alongside the
// count of completed deletions.
func (s *Store) DeleteAssignments(ctx context.Context, ids []string) (int, error) {
	svc := services.NewAssignmentService(s.dbCtx)

	deleted := 0
	for _, id := range ids {
		if err := s.deleteOne(ctx, svc, id); err != nil {
			s.logger.Error("delete assignment failed", zap.String("id", id), zap.Error(err))
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func (s *Store) deleteOne(ctx context.Context, svc *services.AssignmentService, id string) error {
	unlock := s.lockID(id)
	defer unlock()

	if err := archive.RemovePath(config.AssignmentPath(s.courseRoot, id)); err != nil {
		return err
	}
	return svc.Delete(ctx, id)
}

// FilteredAssignments resolves the tag facet through the tag index (OR
// semantics across filter tags), then runs one joined relational query with
// the remaining facets AND-ed in. An empty filter returns every row.
func (s *Store) FilteredAssignments(ctx context.Context, filter course.Filter) ([]database.AssignmentRecord, error) {
	params := database.FilterParams{
		Title:       filter.Title,
		ModuleNames: filter.Modules,
	}

	if len(filter.Tags) > 0 {
		params.FilterByIDs = true
		tags := database.NewTagRepository(s.dbCtx)
		seen := make(map[string]bool)
		for _, tag := range filter.Tags {
			members, err := tags.MembersOf(ctx, course.SpaceAssignment, tag)
			if err != nil {
				return nil, err
			}
			for _, id := range members {
				if !seen[id] {
					seen[id] = true
					params.IDs = append(params.IDs, id)
				}
			}
		}
	}

	return database.NewFilteredAssignmentQuery(s.dbCtx).Run(ctx, params)
}

// AssignmentTags lists every tag in the assignment space with its members.
func (s *Store) AssignmentTags(ctx context.Context) ([]database.TagRecord, error) {
	return database.NewTagRepository(s.dbCtx).AllTags(ctx, course.SpaceAssignment)
}

// Reconcile rebuilds the relational index from the filesystem archive,
// treating the archive as the source of truth. It repairs the inconsistency
// left behind when a crash separated an archive write from its index commit.
func (s *Store) Reconcile(ctx context.Context) (int, error) {
	assignments, err := archive.ReadAssignments(s.courseRoot)
	if err != nil {
		return 0, err
	}

	entries := make([]services.ReconciledAssignment, 0, len(assignments))
	for _, a := range assignments {
		entries = append(entries, services.ReconciledAssignment{
			Assignment:   a,
			RelativePath: relativeArchivePath(a.ID),
		})
	}

	if err := services.NewAssignmentService(s.dbCtx).Rebuild(ctx, entries); err != nil {
		s.logger.Error("reconcile failed", zap.Error(err))
		return 0, err
	}

	s.logger.Info("index reconciled", zap.Int("assignments", len(entries)))
	return len(entries), nil
}

// relativeArchivePath is the course-relative folder recorded in the index.
func relativeArchivePath(id string) string {
	return filepath.ToSlash(filepath.Join(config.AssignmentDataDir, id))
}
