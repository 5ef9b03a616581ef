package main

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/course-kit/coursekit/internal/course"
	"github.com/course-kit/coursekit/internal/database"
)

func newListCmd() *cobra.Command {
	var (
		tags    []string
		modules []string
		title   string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments, optionally filtered by tag, module, or title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := store.FilteredAssignments(context.Background(), course.Filter{
				Tags:    tags,
				Modules: modules,
				Title:   title,
			})
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputListJSON(cmd, rows)
			case "table":
				outputListTable(cmd, rows)
				return nil
			default:
				return errInvalidFormat(format)
			}
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Match assignments carrying any of these tags")
	cmd.Flags().StringSliceVar(&modules, "module", nil, "Match assignments in these modules")
	cmd.Flags().StringVar(&title, "title", "", "Case-sensitive substring of the title")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type listOutputEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
	Module      *int64   `json:"module,omitempty"`
	ModuleName  string   `json:"moduleName,omitempty"`
	IsExpanding bool     `json:"isExpanding"`
	Updated     string   `json:"updated,omitempty"`
}

func outputListJSON(cmd *cobra.Command, rows []database.AssignmentRecord) error {
	output := make([]listOutputEntry, 0, len(rows))
	for _, row := range rows {
		entry := listOutputEntry{
			ID:          row.ID,
			Title:       row.Title,
			Type:        row.Type,
			Tags:        row.Tags,
			Module:      row.Module,
			ModuleName:  row.ModuleName,
			IsExpanding: row.IsExpanding,
		}
		if !row.UpdatedAt.IsZero() {
			entry.Updated = row.UpdatedAt.Format(time.RFC3339)
		}
		output = append(output, entry)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputListTable(cmd *cobra.Command, rows []database.AssignmentRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Type", "Module", "Tags", "Expanding"})

	for _, row := range rows {
		expanding := ""
		if row.IsExpanding {
			expanding = "yes"
		}
		t.AppendRow(table.Row{
			shortID(row.ID),
			row.Title,
			row.Type,
			row.ModuleName,
			strings.Join(row.Tags, ", "),
			expanding,
		})
	}
	t.Render()
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
