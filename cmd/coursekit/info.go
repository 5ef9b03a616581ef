package main

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/course-kit/coursekit/internal/config"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show course metadata and index counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, courseRoot, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			info, err := config.ReadCourseInfo(courseRoot)
			if err != nil {
				return err
			}

			stats, err := store.CourseStats(context.Background())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendRow(table.Row{"Course", info.Name})
			t.AppendRow(table.Row{"Language", info.CodeLanguage})
			t.AppendRow(table.Row{"Root", courseRoot})
			t.AppendSeparator()
			t.AppendRow(table.Row{"Assignments", stats.Assignments})
			t.AppendRow(table.Row{"Modules", stats.Modules})
			t.AppendRow(table.Row{"Assignment tags", stats.AssignmentTags})
			t.AppendRow(table.Row{"Module tags", stats.ModuleTags})
			t.Render()
			return nil
		},
	}
	return cmd
}
