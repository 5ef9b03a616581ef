package database

import (
	"context"
	"fmt"
	"strconv"

	"github.com/course-kit/coursekit/internal/course"
	sqldb "github.com/course-kit/coursekit/internal/database/sqlc"
)

// TagRepository maintains the two inverted tag indexes (assignment space and
// module space). Each space is a join table of (tag, owner) rows, so a tag
// exists exactly as long as it has at least one member: removing the last
// membership removes the tag.
type TagRepository struct {
	ctx *Context
}

func NewTagRepository(dbCtx *Context) *TagRepository {
	return &TagRepository{ctx: dbCtx}
}

// AddMembership records that owner carries tag within the given space.
// Adding an existing membership is a no-op.
func (r *TagRepository) AddMembership(ctx context.Context, space course.TagSpace, tag, ownerID string) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("tag repository: missing database context")
	}
	return addMembership(ctx, queries, space, tag, ownerID)
}

// RemoveMembership retracts owner from tag within the given space.
func (r *TagRepository) RemoveMembership(ctx context.Context, space course.TagSpace, tag, ownerID string) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("tag repository: missing database context")
	}
	return removeMembership(ctx, queries, space, tag, ownerID)
}

// MembersOf returns the owner IDs carrying tag within the given space.
func (r *TagRepository) MembersOf(ctx context.Context, space course.TagSpace, tag string) ([]string, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("tag repository: missing database context")
	}

	switch space {
	case course.SpaceAssignment:
		return queries.ListAssignmentTagMembers(ctx, tag)
	case course.SpaceModule:
		return queries.ListModuleTagMembers(ctx, tag)
	default:
		return nil, fmt.Errorf("unsupported tag space: %s", space)
	}
}

// AllTags returns every tag in the given space with its member IDs, ordered
// by tag name then owner ID.
func (r *TagRepository) AllTags(ctx context.Context, space course.TagSpace) ([]TagRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("tag repository: missing database context")
	}

	var (
		memberships []sqldb.TagMembership
		err         error
	)
	switch space {
	case course.SpaceAssignment:
		memberships, err = queries.ListAssignmentTags(ctx)
	case course.SpaceModule:
		memberships, err = queries.ListModuleTags(ctx)
	default:
		return nil, fmt.Errorf("unsupported tag space: %s", space)
	}
	if err != nil {
		return nil, err
	}

	var result []TagRecord
	for _, m := range memberships {
		if len(result) == 0 || result[len(result)-1].Name != m.Tag {
			result = append(result, TagRecord{Name: m.Tag})
		}
		last := &result[len(result)-1]
		last.Owners = append(last.Owners, m.OwnerID)
	}
	return result, nil
}

func addMembership(ctx context.Context, q *sqldb.Queries, space course.TagSpace, tag, ownerID string) error {
	switch space {
	case course.SpaceAssignment:
		return q.InsertAssignmentTag(ctx, tag, ownerID)
	case course.SpaceModule:
		moduleID, err := parseModuleID(ownerID)
		if err != nil {
			return err
		}
		return q.InsertModuleTag(ctx, tag, moduleID)
	default:
		return fmt.Errorf("unsupported tag space: %s", space)
	}
}

func removeMembership(ctx context.Context, q *sqldb.Queries, space course.TagSpace, tag, ownerID string) error {
	switch space {
	case course.SpaceAssignment:
		return q.DeleteAssignmentTag(ctx, tag, ownerID)
	case course.SpaceModule:
		moduleID, err := parseModuleID(ownerID)
		if err != nil {
			return err
		}
		return q.DeleteModuleTag(ctx, tag, moduleID)
	default:
		return fmt.Errorf("unsupported tag space: %s", space)
	}
}

// ApplyTagDiff updates an owner's tag set as a symmetric difference against
// the stored set: one removal per dropped tag, one insert per gained tag,
// never a rebuild. Runs on whatever queries object it is handed, so services
// can scope it to a transaction.
func ApplyTagDiff(ctx context.Context, q *sqldb.Queries, space course.TagSpace, ownerID string, oldTags, newTags []string) error {
	oldSet := make(map[string]bool, len(oldTags))
	for _, tag := range oldTags {
		oldSet[tag] = true
	}
	newSet := make(map[string]bool, len(newTags))
	for _, tag := range newTags {
		newSet[tag] = true
	}

	for _, tag := range oldTags {
		if !newSet[tag] {
			if err := removeMembership(ctx, q, space, tag, ownerID); err != nil {
				return fmt.Errorf("retract tag %q from %s: %w", tag, ownerID, err)
			}
		}
	}
	for _, tag := range newTags {
		if !oldSet[tag] {
			if err := addMembership(ctx, q, space, tag, ownerID); err != nil {
				return fmt.Errorf("add tag %q to %s: %w", tag, ownerID, err)
			}
		}
	}
	return nil
}

func parseModuleID(ownerID string) (int64, error) {
	id, err := strconv.ParseInt(ownerID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid module owner id %q: %w", ownerID, err)
	}
	return id, nil
}
