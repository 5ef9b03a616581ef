// Package services implements the transactional relational operations of the
// store: every logical mutation (row change plus tag-index diff) runs inside
// a single transaction so the index can never be left half-written.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/course-kit/coursekit/internal/course"
	"github.com/course-kit/coursekit/internal/database"
	sqldb "github.com/course-kit/coursekit/internal/database/sqlc"
)

// AssignmentService owns writes to the assignments table and the assignment
// tag space.
type AssignmentService struct {
	ctx *database.Context
}

func NewAssignmentService(dbCtx *database.Context) *AssignmentService {
	return &AssignmentService{ctx: dbCtx}
}

// Insert creates the relational row for a freshly persisted assignment and
// registers its tag memberships.
func (s *AssignmentService) Insert(ctx context.Context, a *course.Assignment, relativePath string) error {
	return withTx(ctx, s.ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		if err := q.InsertAssignment(txCtx, database.AssignmentInsertParams(a, relativePath)); err != nil {
			return fmt.Errorf("insert assignment %s: %w", a.ID, err)
		}
		return database.ApplyTagDiff(txCtx, q, course.SpaceAssignment, a.ID, nil, a.Tags)
	})
}

// Update diffs the assignment against its stored row and issues an UPDATE
// touching only changed columns; when the tag set changed the tag index is
// diffed in the same transaction. A fully unchanged assignment issues no SQL
// beyond the read.
func (s *AssignmentService) Update(ctx context.Context, a *course.Assignment, relativePath string) error {
	return withTx(ctx, s.ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		stored, err := q.FindAssignmentByID(txCtx, a.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("assignment %s: %w", a.ID, course.ErrNotFound)
			}
			return err
		}

		next := database.AssignmentInsertParams(a, relativePath)
		if query, args := database.AssignmentUpdateDiff(stored, next); query != "" {
			if _, err := q.DB().ExecContext(txCtx, query, args...); err != nil {
				return fmt.Errorf("update assignment %s: %w", a.ID, err)
			}
		}

		oldTags, err := q.ListTagsForAssignment(txCtx, a.ID)
		if err != nil {
			return err
		}
		return database.ApplyTagDiff(txCtx, q, course.SpaceAssignment, a.ID, oldTags, a.Tags)
	})
}

// Delete retracts every tag membership of the assignment and removes its
// row.
func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	return withTx(ctx, s.ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		if err := q.DeleteTagsForAssignment(txCtx, id); err != nil {
			return fmt.Errorf("retract tags for %s: %w", id, err)
		}
		affected, err := q.DeleteAssignmentByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete assignment %s: %w", id, err)
		}
		if affected == 0 {
			return fmt.Errorf("assignment %s: %w", id, course.ErrNotFound)
		}
		return nil
	})
}

// TitleInUse reports whether another assignment already carries the title.
func (s *AssignmentService) TitleInUse(ctx context.Context, title, excludeID string) (bool, error) {
	q := queries(s.ctx)
	if q == nil {
		return false, fmt.Errorf("assignment service: missing database context")
	}

	row, err := q.FindAssignmentByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return row.ID != excludeID, nil
}

// ReconciledAssignment pairs an archived assignment with its course-relative
// archive path for index rebuilding.
type ReconciledAssignment struct {
	Assignment   *course.Assignment
	RelativePath string
}

// Rebuild replaces the assignments table and the assignment tag space with
// the given archive contents in one transaction. The module side is left
// untouched.
func (s *AssignmentService) Rebuild(ctx context.Context, entries []ReconciledAssignment) error {
	return withTx(ctx, s.ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		if err := q.DeleteAllAssignmentTags(txCtx); err != nil {
			return fmt.Errorf("clear assignment tags: %w", err)
		}
		if err := q.DeleteAllAssignments(txCtx); err != nil {
			return fmt.Errorf("clear assignments: %w", err)
		}
		for _, entry := range entries {
			a := entry.Assignment
			if err := q.InsertAssignment(txCtx, database.AssignmentInsertParams(a, entry.RelativePath)); err != nil {
				return fmt.Errorf("reinsert assignment %s: %w", a.ID, err)
			}
			if err := database.ApplyTagDiff(txCtx, q, course.SpaceAssignment, a.ID, nil, a.Tags); err != nil {
				return err
			}
		}
		return nil
	})
}
