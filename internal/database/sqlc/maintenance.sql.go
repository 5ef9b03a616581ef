package sqldb

import "context"

const deleteAllAssignmentTags = `DELETE FROM assignment_tags`

func (q *Queries) DeleteAllAssignmentTags(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllAssignmentTags)
	return err
}

const deleteAllAssignments = `DELETE FROM assignments`

func (q *Queries) DeleteAllAssignments(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllAssignments)
	return err
}

const deleteAllModuleTags = `DELETE FROM module_tags`

func (q *Queries) DeleteAllModuleTags(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllModuleTags)
	return err
}

const deleteAllModules = `DELETE FROM modules`

func (q *Queries) DeleteAllModules(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllModules)
	return err
}

const countAssignments = `SELECT COUNT(*) FROM assignments`

func (q *Queries) CountAssignments(ctx context.Context) (int64, error) {
	return q.countRows(ctx, countAssignments)
}

const countModules = `SELECT COUNT(*) FROM modules`

func (q *Queries) CountModules(ctx context.Context) (int64, error) {
	return q.countRows(ctx, countModules)
}

const countAssignmentTags = `SELECT COUNT(DISTINCT tag) FROM assignment_tags`

func (q *Queries) CountAssignmentTags(ctx context.Context) (int64, error) {
	return q.countRows(ctx, countAssignmentTags)
}

const countModuleTags = `SELECT COUNT(DISTINCT tag) FROM module_tags`

func (q *Queries) CountModuleTags(ctx context.Context) (int64, error) {
	return q.countRows(ctx, countModuleTags)
}

func (q *Queries) countRows(ctx context.Context, query string) (int64, error) {
	var count int64
	if err := q.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
