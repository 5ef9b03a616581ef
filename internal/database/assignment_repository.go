package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/course-kit/coursekit/internal/course"
	sqldb "github.com/course-kit/coursekit/internal/database/sqlc"
)

// AssignmentRepository reads assignment rows together with their tag
// memberships. Writes go through the service layer so that row changes and
// tag diffs share one transaction.
type AssignmentRepository struct {
	ctx *Context
}

func NewAssignmentRepository(dbCtx *Context) *AssignmentRepository {
	return &AssignmentRepository{ctx: dbCtx}
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*AssignmentRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("assignment repository: missing database context")
	}

	row, err := queries.FindAssignmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	record, err := mapAssignmentRow(ctx, queries, row)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AssignmentRepository) FindAll(ctx context.Context) ([]AssignmentRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("assignment repository: missing database context")
	}

	rows, err := queries.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]AssignmentRecord, 0, len(rows))
	for _, row := range rows {
		record, err := mapAssignmentRow(ctx, queries, row)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}

func mapAssignmentRow(ctx context.Context, q *sqldb.Queries, row sqldb.Assignment) (AssignmentRecord, error) {
	tags, err := q.ListTagsForAssignment(ctx, row.ID)
	if err != nil {
		return AssignmentRecord{}, err
	}

	return AssignmentRecord{
		ID:           row.ID,
		Type:         row.Type,
		Title:        row.Title,
		Tags:         tags,
		Module:       optionalInt64Ptr(row.Module),
		Position:     decodePosition(row.Position),
		Level:        optionalInt64Ptr(row.Level),
		IsExpanding:  row.IsExpanding != 0,
		CodeLanguage: row.CodeLanguage,
		RelativePath: row.RelativePath,
		CreatedAt:    optionalTime(row.CreatedAt),
		UpdatedAt:    optionalTime(row.UpdatedAt),
	}, nil
}

// AssignmentInsertParams derives the relational row for an assignment.
// is_expanding is always recomputed from next/previous here, never taken
// from the caller.
func AssignmentInsertParams(a *course.Assignment, relativePath string) sqldb.InsertAssignmentParams {
	return sqldb.InsertAssignmentParams{
		ID:           a.ID,
		Type:         string(a.Type),
		Title:        a.Title,
		Module:       nullInt64Ptr(a.Module),
		Position:     encodePosition(a.Position),
		Level:        nullInt64Ptr(a.Level),
		IsExpanding:  boolToInt64(a.IsExpanding()),
		CodeLanguage: a.CodeLanguage,
		RelativePath: relativePath,
	}
}

// AssignmentUpdateDiff compares the desired row against the stored one and
// returns an UPDATE statement touching only changed columns, or an empty
// string when nothing changed.
func AssignmentUpdateDiff(stored sqldb.Assignment, next sqldb.InsertAssignmentParams) (string, []any) {
	var (
		sets []string
		args []any
	)

	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if stored.Type != next.Type {
		set("type", next.Type)
	}
	if stored.Title != next.Title {
		set("title", next.Title)
	}
	if stored.Module != next.Module {
		set("module", next.Module)
	}
	if stored.Position != next.Position {
		set("position", next.Position)
	}
	if stored.Level != next.Level {
		set("level", next.Level)
	}
	if stored.IsExpanding != next.IsExpanding {
		set("is_expanding", next.IsExpanding)
	}
	if stored.CodeLanguage != next.CodeLanguage {
		set("code_language", next.CodeLanguage)
	}
	if stored.RelativePath != next.RelativePath {
		set("relative_path", next.RelativePath)
	}

	if len(sets) == 0 {
		return "", nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	query := "UPDATE assignments SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, next.ID)
	return query, args
}
