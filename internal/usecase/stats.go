package usecase

import (
	"context"
	"fmt"
)

// Stats holds course-level counts for display.
type Stats struct {
	Assignments    int64
	Modules        int64
	AssignmentTags int64
	ModuleTags     int64
}

// CourseStats gathers row counts from the relational index.
func (s *Store) CourseStats(ctx context.Context) (Stats, error) {
	q := s.dbCtx.Queries
	if q == nil {
		return Stats{}, fmt.Errorf("store: missing database context")
	}

	var (
		stats Stats
		err   error
	)
	if stats.Assignments, err = q.CountAssignments(ctx); err != nil {
		return Stats{}, err
	}
	if stats.Modules, err = q.CountModules(ctx); err != nil {
		return Stats{}, err
	}
	if stats.AssignmentTags, err = q.CountAssignmentTags(ctx); err != nil {
		return Stats{}, err
	}
	if stats.ModuleTags, err = q.CountModuleTags(ctx); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
