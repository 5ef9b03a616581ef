package services

import (
	"context"
	"fmt"

	"github.com/course-kit/coursekit/internal/database"
	sqldb "github.com/course-kit/coursekit/internal/database/sqlc"
)

// withTx runs fn inside a transaction scoped to the course database,
// rolling back on any error.
func withTx(ctx context.Context, dbCtx *database.Context, fn func(ctx context.Context, q *sqldb.Queries) error) error {
	if dbCtx == nil || dbCtx.DB == nil {
		return fmt.Errorf("services: missing database context")
	}

	tx, err := dbCtx.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	q := queries(dbCtx).WithTx(tx)
	if err := fn(ctx, q); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback error: %w)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func queries(dbCtx *database.Context) *sqldb.Queries {
	if dbCtx == nil {
		return nil
	}
	if dbCtx.Queries != nil {
		return dbCtx.Queries
	}
	if dbCtx.DB == nil {
		return nil
	}
	return sqldb.New(dbCtx.DB)
}
