package sqldb

import (
	"context"
	"database/sql"
)

// Module matches a row of the modules table.
type Module struct {
	ID           int64
	Name         string
	Assignments  int64
	Subjects     sql.NullString
	Letters      int64
	Instructions sql.NullString
	CreatedAt    sql.NullTime
	UpdatedAt    sql.NullTime
}

const moduleColumns = `id, name, assignments, subjects, letters, instructions, created_at, updated_at`

const insertModule = `INSERT INTO modules (name, assignments, subjects, letters, instructions)
VALUES (?, ?, ?, ?, ?)`

type InsertModuleParams struct {
	Name         string
	Assignments  int64
	Subjects     sql.NullString
	Letters      int64
	Instructions sql.NullString
}

func (q *Queries) InsertModule(ctx context.Context, arg InsertModuleParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertModule,
		arg.Name,
		arg.Assignments,
		arg.Subjects,
		arg.Letters,
		arg.Instructions,
	)
}

const updateModule = `UPDATE modules
SET name = ?, assignments = ?, subjects = ?, letters = ?, instructions = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`

type UpdateModuleParams struct {
	Name         string
	Assignments  int64
	Subjects     sql.NullString
	Letters      int64
	Instructions sql.NullString
	ID           int64
}

func (q *Queries) UpdateModule(ctx context.Context, arg UpdateModuleParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateModule,
		arg.Name,
		arg.Assignments,
		arg.Subjects,
		arg.Letters,
		arg.Instructions,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const findModuleByID = `SELECT ` + moduleColumns + ` FROM modules WHERE id = ?`

func (q *Queries) FindModuleByID(ctx context.Context, id int64) (Module, error) {
	row := q.db.QueryRowContext(ctx, findModuleByID, id)
	return scanModule(row)
}

const findModuleByName = `SELECT ` + moduleColumns + ` FROM modules WHERE name = ?`

func (q *Queries) FindModuleByName(ctx context.Context, name string) (Module, error) {
	row := q.db.QueryRowContext(ctx, findModuleByName, name)
	return scanModule(row)
}

const listModules = `SELECT ` + moduleColumns + ` FROM modules ORDER BY id`

func (q *Queries) ListModules(ctx context.Context) ([]Module, error) {
	rows, err := q.db.QueryContext(ctx, listModules)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []Module
	for rows.Next() {
		var m Module
		if err := rows.Scan(&m.ID, &m.Name, &m.Assignments, &m.Subjects, &m.Letters, &m.Instructions, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

const deleteModuleByID = `DELETE FROM modules WHERE id = ?`

func (q *Queries) DeleteModuleByID(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteModuleByID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanModule(row *sql.Row) (Module, error) {
	var m Module
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Assignments,
		&m.Subjects,
		&m.Letters,
		&m.Instructions,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
