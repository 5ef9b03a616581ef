package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sqldb "github.com/course-kit/coursekit/internal/database/sqlc"
)

// ModuleRepository reads module rows with their tag memberships.
type ModuleRepository struct {
	ctx *Context
}

func NewModuleRepository(dbCtx *Context) *ModuleRepository {
	return &ModuleRepository{ctx: dbCtx}
}

func (r *ModuleRepository) FindByID(ctx context.Context, id int64) (*ModuleRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("module repository: missing database context")
	}

	row, err := queries.FindModuleByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	record, err := mapModuleRow(ctx, queries, row)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *ModuleRepository) FindAll(ctx context.Context) ([]ModuleRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("module repository: missing database context")
	}

	rows, err := queries.ListModules(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ModuleRecord, 0, len(rows))
	for _, row := range rows {
		record, err := mapModuleRow(ctx, queries, row)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}

func mapModuleRow(ctx context.Context, q *sqldb.Queries, row sqldb.Module) (ModuleRecord, error) {
	tags, err := q.ListTagsForModule(ctx, row.ID)
	if err != nil {
		return ModuleRecord{}, err
	}

	return ModuleRecord{
		ID:           row.ID,
		Name:         row.Name,
		Tags:         tags,
		Assignments:  row.Assignments,
		Subjects:     optionalString(row.Subjects),
		Letters:      row.Letters != 0,
		Instructions: optionalString(row.Instructions),
		CreatedAt:    optionalTime(row.CreatedAt),
		UpdatedAt:    optionalTime(row.UpdatedAt),
	}, nil
}

// ModuleOwnerID formats a module ID for tag-space membership rows.
func ModuleOwnerID(id int64) string {
	return strconv.FormatInt(id, 10)
}
