package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete assignments by ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			count, err := store.DeleteAssignments(context.Background(), args)
			if err != nil {
				return fmt.Errorf("deleted %d of %d before failing: %w", count, len(args), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d assignment(s)\n", count)
			return nil
		},
	}
	return cmd
}
