package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Rebuild the SQLite index from the filesystem archive",
		Long:  "Rebuilds the assignments index from the archive, treating the archive as the source of truth. Repairs a database left inconsistent by an interrupted save.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			count, err := store.Reconcile(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reindexed %d assignment(s)\n", count)
			return nil
		},
	}
	return cmd
}
