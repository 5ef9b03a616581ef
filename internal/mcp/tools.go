package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/course-kit/coursekit/internal/course"
	"github.com/course-kit/coursekit/internal/database"
)

type FilterInput struct {
	Tags    []string `json:"tags,omitempty" jsonschema:"description=Match assignments carrying any of these tags"`
	Modules []string `json:"modules,omitempty" jsonschema:"description=Match assignments in modules with these names"`
	Title   string   `json:"title,omitempty" jsonschema:"description=Case-sensitive substring of the title"`
}

type FilterOutput struct {
	Assignments []FilterEntry `json:"assignments"`
}

type FilterEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
	Module      *int64   `json:"module,omitempty"`
	ModuleName  string   `json:"moduleName,omitempty"`
	IsExpanding bool     `json:"isExpanding"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

func (s *Server) handleFilter(ctx context.Context, req *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, FilterOutput, error) {
	rows, err := s.store.FilteredAssignments(ctx, course.Filter{
		Tags:    input.Tags,
		Modules: input.Modules,
		Title:   input.Title,
	})
	if err != nil {
		return nil, FilterOutput{}, fmt.Errorf("filter assignments: %w", err)
	}

	output := FilterOutput{Assignments: make([]FilterEntry, 0, len(rows))}
	for _, row := range rows {
		entry := FilterEntry{
			ID:          row.ID,
			Title:       row.Title,
			Type:        row.Type,
			Tags:        row.Tags,
			Module:      row.Module,
			ModuleName:  row.ModuleName,
			IsExpanding: row.IsExpanding,
		}
		if !row.UpdatedAt.IsZero() {
			entry.UpdatedAt = row.UpdatedAt.Format(time.RFC3339)
		}
		output.Assignments = append(output.Assignments, entry)
	}
	return nil, output, nil
}

type GetInput struct {
	ID string `json:"id" jsonschema:"required,description=The assignment ID (content hash)"`
}

type GetOutput struct {
	Assignment *course.Assignment `json:"assignment"`
}

func (s *Server) handleGet(ctx context.Context, req *mcp.CallToolRequest, input GetInput) (*mcp.CallToolResult, GetOutput, error) {
	assignments, err := s.store.GetAssignments(ctx, input.ID)
	if err != nil {
		return nil, GetOutput{}, fmt.Errorf("get assignment: %w", err)
	}
	if len(assignments) == 0 {
		return nil, GetOutput{}, fmt.Errorf("assignment %s: %w", input.ID, course.ErrNotFound)
	}
	return nil, GetOutput{Assignment: assignments[0]}, nil
}

type TagsInput struct {
	Space string `json:"space,omitempty" jsonschema:"enum=assignment;module,description=Tag space to list (assignment if omitted)"`
}

type TagsOutput struct {
	Tags []TagEntry `json:"tags"`
}

type TagEntry struct {
	Name   string   `json:"name"`
	Owners []string `json:"owners"`
}

func (s *Server) handleTags(ctx context.Context, req *mcp.CallToolRequest, input TagsInput) (*mcp.CallToolResult, TagsOutput, error) {
	var (
		records []database.TagRecord
		err     error
	)
	if input.Space == string(course.SpaceModule) {
		records, err = s.store.ModuleTags(ctx)
	} else {
		records, err = s.store.AssignmentTags(ctx)
	}
	if err != nil {
		return nil, TagsOutput{}, fmt.Errorf("list tags: %w", err)
	}

	output := TagsOutput{Tags: make([]TagEntry, 0, len(records))}
	for _, record := range records {
		output.Tags = append(output.Tags, TagEntry{Name: record.Name, Owners: record.Owners})
	}
	return nil, output, nil
}

type DeleteInput struct {
	IDs []string `json:"ids" jsonschema:"required,description=Assignment IDs to delete"`
}

type DeleteOutput struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (s *Server) handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	count, err := s.store.DeleteAssignments(ctx, input.IDs)
	if err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("deleted %d before failing: %w", count, err)
	}
	return nil, DeleteOutput{
		Message: "Assignments deleted",
		Count:   count,
	}, nil
}
