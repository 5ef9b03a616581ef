package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <folder>",
		Short: "Import assignments from an external folder tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := store.ImportAssignments(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d assignment(s)\n", len(result.Imported))
			for _, title := range result.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped duplicate: %s\n", title)
			}
			return nil
		},
	}
	return cmd
}
