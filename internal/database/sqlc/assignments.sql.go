package sqldb

import (
	"context"
	"database/sql"
)

// Assignment matches a row of the assignments table.
type Assignment struct {
	ID           string
	Type         string
	Title        string
	Module       sql.NullInt64
	Position     string
	Level        sql.NullInt64
	IsExpanding  int64
	CodeLanguage string
	RelativePath string
	CreatedAt    sql.NullTime
	UpdatedAt    sql.NullTime
}

const assignmentColumns = `id, type, title, module, position, level, is_expanding, code_language, relative_path, created_at, updated_at`

const insertAssignment = `INSERT INTO assignments (id, type, title, module, position, level, is_expanding, code_language, relative_path)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

type InsertAssignmentParams struct {
	ID           string
	Type         string
	Title        string
	Module       sql.NullInt64
	Position     string
	Level        sql.NullInt64
	IsExpanding  int64
	CodeLanguage string
	RelativePath string
}

func (q *Queries) InsertAssignment(ctx context.Context, arg InsertAssignmentParams) error {
	_, err := q.db.ExecContext(ctx, insertAssignment,
		arg.ID,
		arg.Type,
		arg.Title,
		arg.Module,
		arg.Position,
		arg.Level,
		arg.IsExpanding,
		arg.CodeLanguage,
		arg.RelativePath,
	)
	return err
}

const findAssignmentByID = `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`

func (q *Queries) FindAssignmentByID(ctx context.Context, id string) (Assignment, error) {
	row := q.db.QueryRowContext(ctx, findAssignmentByID, id)
	return scanAssignment(row)
}

const findAssignmentByTitle = `SELECT ` + assignmentColumns + ` FROM assignments WHERE title = ?`

func (q *Queries) FindAssignmentByTitle(ctx context.Context, title string) (Assignment, error) {
	row := q.db.QueryRowContext(ctx, findAssignmentByTitle, title)
	return scanAssignment(row)
}

const listAssignments = `SELECT ` + assignmentColumns + ` FROM assignments ORDER BY id`

func (q *Queries) ListAssignments(ctx context.Context) ([]Assignment, error) {
	rows, err := q.db.QueryContext(ctx, listAssignments)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []Assignment
	for rows.Next() {
		item, err := scanAssignmentRows(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

const deleteAssignmentByID = `DELETE FROM assignments WHERE id = ?`

func (q *Queries) DeleteAssignmentByID(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteAssignmentByID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanAssignment(row *sql.Row) (Assignment, error) {
	var a Assignment
	err := row.Scan(
		&a.ID,
		&a.Type,
		&a.Title,
		&a.Module,
		&a.Position,
		&a.Level,
		&a.IsExpanding,
		&a.CodeLanguage,
		&a.RelativePath,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func scanAssignmentRows(rows *sql.Rows) (Assignment, error) {
	var a Assignment
	err := rows.Scan(
		&a.ID,
		&a.Type,
		&a.Title,
		&a.Module,
		&a.Position,
		&a.Level,
		&a.IsExpanding,
		&a.CodeLanguage,
		&a.RelativePath,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
