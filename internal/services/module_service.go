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

// ModuleService owns writes to the modules table and the module tag space.
type ModuleService struct {
	ctx *database.Context
}

func NewModuleService(dbCtx *database.Context) *ModuleService {
	return &ModuleService{ctx: dbCtx}
}

// Insert creates a module row and its tag memberships, returning the new ID.
func (s *ModuleService) Insert(ctx context.Context, m *course.Module) (int64, error) {
	var id int64
	err := withTx(ctx, s.ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		res, err := q.InsertModule(txCtx, moduleInsertParams(m))
		if err != nil {
			return fmt.Errorf("insert module %q: %w", m.Name, err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}
		return database.ApplyTagDiff(txCtx, q, course.SpaceModule, database.ModuleOwnerID(id), nil, m.Tags)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites the module row and diffs its tag memberships.
func (s *ModuleService) Update(ctx context.Context, m *course.Module) error {
	return withTx(ctx, s.ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		if _, err := q.FindModuleByID(txCtx, m.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("module %d: %w", m.ID, course.ErrNotFound)
			}
			return err
		}

		params := moduleInsertParams(m)
		affected, err := q.UpdateModule(txCtx, sqldb.UpdateModuleParams{
			Name:         params.Name,
			Assignments:  params.Assignments,
			Subjects:     params.Subjects,
			Letters:      params.Letters,
			Instructions: params.Instructions,
			ID:           m.ID,
		})
		if err != nil {
			return fmt.Errorf("update module %d: %w", m.ID, err)
		}
		if affected == 0 {
			return fmt.Errorf("module %d: %w", m.ID, course.ErrNotFound)
		}

		oldTags, err := q.ListTagsForModule(txCtx, m.ID)
		if err != nil {
			return err
		}
		return database.ApplyTagDiff(txCtx, q, course.SpaceModule, database.ModuleOwnerID(m.ID), oldTags, m.Tags)
	})
}

// Delete retracts the module's tag memberships and removes its row.
func (s *ModuleService) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, s.ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		if err := q.DeleteTagsForModule(txCtx, id); err != nil {
			return fmt.Errorf("retract tags for module %d: %w", id, err)
		}
		affected, err := q.DeleteModuleByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete module %d: %w", id, err)
		}
		if affected == 0 {
			return fmt.Errorf("module %d: %w", id, course.ErrNotFound)
		}
		return nil
	})
}

// NameInUse reports whether another module already carries the name.
func (s *ModuleService) NameInUse(ctx context.Context, name string, excludeID int64) (bool, error) {
	q := queries(s.ctx)
	if q == nil {
		return false, fmt.Errorf("module service: missing database context")
	}

	row, err := q.FindModuleByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return row.ID != excludeID, nil
}

func moduleInsertParams(m *course.Module) sqldb.InsertModuleParams {
	letters := int64(0)
	if m.Letters {
		letters = 1
	}
	return sqldb.InsertModuleParams{
		Name:         m.Name,
		Assignments:  int64(m.Assignments),
		Subjects:     nullString(m.Subjects),
		Letters:      letters,
		Instructions: nullString(m.Instructions),
	}
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
