package sqldb

import "context"

// TagMembership is one (tag, owner) row from either tag space.
type TagMembership struct {
	Tag     string
	OwnerID string
}

const insertAssignmentTag = `INSERT OR IGNORE INTO assignment_tags (tag, assignment_id) VALUES (?, ?)`

func (q *Queries) InsertAssignmentTag(ctx context.Context, tag, assignmentID string) error {
	_, err := q.db.ExecContext(ctx, insertAssignmentTag, tag, assignmentID)
	return err
}

const deleteAssignmentTag = `DELETE FROM assignment_tags WHERE tag = ? AND assignment_id = ?`

func (q *Queries) DeleteAssignmentTag(ctx context.Context, tag, assignmentID string) error {
	_, err := q.db.ExecContext(ctx, deleteAssignmentTag, tag, assignmentID)
	return err
}

const deleteTagsForAssignment = `DELETE FROM assignment_tags WHERE assignment_id = ?`

func (q *Queries) DeleteTagsForAssignment(ctx context.Context, assignmentID string) error {
	_, err := q.db.ExecContext(ctx, deleteTagsForAssignment, assignmentID)
	return err
}

const listAssignmentTagMembers = `SELECT assignment_id FROM assignment_tags WHERE tag = ? ORDER BY assignment_id`

func (q *Queries) ListAssignmentTagMembers(ctx context.Context, tag string) ([]string, error) {
	return q.listStrings(ctx, listAssignmentTagMembers, tag)
}

const listTagsForAssignment = `SELECT tag FROM assignment_tags WHERE assignment_id = ? ORDER BY tag`

func (q *Queries) ListTagsForAssignment(ctx context.Context, assignmentID string) ([]string, error) {
	return q.listStrings(ctx, listTagsForAssignment, assignmentID)
}

const listAssignmentTags = `SELECT tag, assignment_id FROM assignment_tags ORDER BY tag, assignment_id`

func (q *Queries) ListAssignmentTags(ctx context.Context) ([]TagMembership, error) {
	return q.listMemberships(ctx, listAssignmentTags)
}

const insertModuleTag = `INSERT OR IGNORE INTO module_tags (tag, module_id) VALUES (?, ?)`

func (q *Queries) InsertModuleTag(ctx context.Context, tag string, moduleID int64) error {
	_, err := q.db.ExecContext(ctx, insertModuleTag, tag, moduleID)
	return err
}

const deleteModuleTag = `DELETE FROM module_tags WHERE tag = ? AND module_id = ?`

func (q *Queries) DeleteModuleTag(ctx context.Context, tag string, moduleID int64) error {
	_, err := q.db.ExecContext(ctx, deleteModuleTag, tag, moduleID)
	return err
}

const deleteTagsForModule = `DELETE FROM module_tags WHERE module_id = ?`

func (q *Queries) DeleteTagsForModule(ctx context.Context, moduleID int64) error {
	_, err := q.db.ExecContext(ctx, deleteTagsForModule, moduleID)
	return err
}

const listModuleTagMembers = `SELECT CAST(module_id AS TEXT) FROM module_tags WHERE tag = ? ORDER BY module_id`

func (q *Queries) ListModuleTagMembers(ctx context.Context, tag string) ([]string, error) {
	return q.listStrings(ctx, listModuleTagMembers, tag)
}

const listTagsForModule = `SELECT tag FROM module_tags WHERE module_id = ? ORDER BY tag`

func (q *Queries) ListTagsForModule(ctx context.Context, moduleID int64) ([]string, error) {
	return q.listStrings(ctx, listTagsForModule, moduleID)
}

const listModuleTags = `SELECT tag, CAST(module_id AS TEXT) FROM module_tags ORDER BY tag, module_id`

func (q *Queries) ListModuleTags(ctx context.Context) ([]TagMembership, error) {
	return q.listMemberships(ctx, listModuleTags)
}

func (q *Queries) listStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	return result, rows.Err()
}

func (q *Queries) listMemberships(ctx context.Context, query string) ([]TagMembership, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []TagMembership
	for rows.Next() {
		var m TagMembership
		if err := rows.Scan(&m.Tag, &m.OwnerID); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
