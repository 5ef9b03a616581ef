package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/course-kit/coursekit/internal/course"
	"github.com/course-kit/coursekit/internal/database"
)

func newTagsCmd() *cobra.Command {
	var (
		space  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags and their members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := context.Background()
			var records []database.TagRecord
			switch space {
			case string(course.SpaceAssignment):
				records, err = store.AssignmentTags(ctx)
			case string(course.SpaceModule):
				records, err = store.ModuleTags(ctx)
			default:
				return fmt.Errorf("invalid space: %s (valid values: assignment, module)", space)
			}
			if err != nil {
				return err
			}

			switch format {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				output := make([]course.Tag, 0, len(records))
				for _, record := range records {
					output = append(output, course.Tag{Name: record.Name, Owners: record.Owners})
				}
				return encoder.Encode(output)
			case "table":
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Tag", "Members"})
				for _, record := range records {
					t.AppendRow(table.Row{record.Name, strings.Join(record.Owners, ", ")})
				}
				t.Render()
				return nil
			default:
				return errInvalidFormat(format)
			}
		},
	}

	cmd.Flags().StringVar(&space, "space", string(course.SpaceAssignment), "Tag space: assignment or module")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func errInvalidFormat(format string) error {
	return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
}
