package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// FilterParams is the relational half of a filtered assignment query. The
// tag facet has already been resolved to a candidate ID set by the caller.
type FilterParams struct {
	Title       string
	IDs         []string
	FilterByIDs bool
	ModuleNames []string
}

// FilteredAssignmentQuery builds and runs the single filter query: a join of
// assignments against modules with AND-ed WHERE clauses per facet. Rows come
// back in primary-key order, which keeps results deterministic for equal
// inputs.
type FilteredAssignmentQuery struct {
	ctx *Context
}

func NewFilteredAssignmentQuery(dbCtx *Context) *FilteredAssignmentQuery {
	return &FilteredAssignmentQuery{ctx: dbCtx}
}

func (q *FilteredAssignmentQuery) Run(ctx context.Context, params FilterParams) ([]AssignmentRecord, error) {
	queries := queriesFromContext(q.ctx)
	if queries == nil {
		return nil, fmt.Errorf("filtered assignment query: missing database context")
	}

	// A tag facet that resolved to nothing can never match.
	if params.FilterByIDs && len(params.IDs) == 0 {
		return nil, nil
	}

	var (
		clauses []string
		args    []any
	)

	if params.Title != "" {
		clauses = append(clauses, "INSTR(a.title, ?) > 0")
		args = append(args, params.Title)
	}
	if params.FilterByIDs {
		clauses = append(clauses, "a.id IN ("+placeholders(len(params.IDs))+")")
		for _, id := range params.IDs {
			args = append(args, id)
		}
	}
	if len(params.ModuleNames) > 0 {
		clauses = append(clauses, "m.name IN ("+placeholders(len(params.ModuleNames))+")")
		for _, name := range params.ModuleNames {
			args = append(args, name)
		}
	}

	query := `SELECT a.id, a.type, a.title, a.module, a.position, a.level, a.is_expanding,
a.code_language, a.relative_path, a.created_at, a.updated_at, m.name
FROM assignments a
LEFT JOIN modules m ON m.id = a.module`
	if len(clauses) > 0 {
		query += "\nWHERE " + strings.Join(clauses, " AND ")
	}
	query += "\nORDER BY a.id"

	rows, err := queries.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []AssignmentRecord
	for rows.Next() {
		var (
			record     AssignmentRecord
			module     sql.NullInt64
			level      sql.NullInt64
			expanding  int64
			position   string
			createdAt  sql.NullTime
			updatedAt  sql.NullTime
			moduleName sql.NullString
		)
		if err := rows.Scan(
			&record.ID,
			&record.Type,
			&record.Title,
			&module,
			&position,
			&level,
			&expanding,
			&record.CodeLanguage,
			&record.RelativePath,
			&createdAt,
			&updatedAt,
			&moduleName,
		); err != nil {
			return nil, err
		}
		record.Module = optionalInt64Ptr(module)
		record.Position = decodePosition(position)
		record.Level = optionalInt64Ptr(level)
		record.IsExpanding = expanding != 0
		record.CreatedAt = optionalTime(createdAt)
		record.UpdatedAt = optionalTime(updatedAt)
		record.ModuleName = optionalString(moduleName)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		tags, err := queries.ListTagsForAssignment(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Tags = tags
	}
	return result, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
