package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/course-kit/coursekit/internal/course"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <assignment.json>",
		Short: "Add a new assignment from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readAssignmentFile(args[0])
			if err != nil {
				return err
			}

			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := store.AddAssignment(context.Background(), a)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added assignment %s (%s)\n", a.Title, id)
			return nil
		},
	}
	return cmd
}

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <assignment.json>",
		Short: "Update a persisted assignment from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readAssignmentFile(args[0])
			if err != nil {
				return err
			}

			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.UpdateAssignment(context.Background(), a); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated assignment %s\n", a.ID)
			return nil
		},
	}
	return cmd
}

func readAssignmentFile(path string) (*course.Assignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assignment file: %w", err)
	}

	var a course.Assignment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse assignment file: %w", err)
	}
	return &a, nil
}
