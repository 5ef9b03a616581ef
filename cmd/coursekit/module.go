package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/course-kit/coursekit/internal/course"
)

func newModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Manage course modules",
	}

	cmd.AddCommand(newModuleAddCmd())
	cmd.AddCommand(newModuleUpdateCmd())
	cmd.AddCommand(newModuleListCmd())
	cmd.AddCommand(newModuleDeleteCmd())
	return cmd
}

func newModuleAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <module.json>",
		Short: "Add a module from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModuleFile(args[0])
			if err != nil {
				return err
			}

			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := store.AddModule(context.Background(), m)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added module %s (%d)\n", m.Name, id)
			return nil
		},
	}
	return cmd
}

func newModuleUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <module.json>",
		Short: "Update a module from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModuleFile(args[0])
			if err != nil {
				return err
			}

			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.UpdateModule(context.Background(), m); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated module %d\n", m.ID)
			return nil
		},
	}
	return cmd
}

func newModuleListCmd() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List modules, optionally filtered by tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			modules, err := store.FilteredModules(context.Background(), tags)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Assignments", "Tags", "Letters"})
			for _, m := range modules {
				letters := ""
				if m.Letters {
					letters = "yes"
				}
				t.AppendRow(table.Row{m.ID, m.Name, m.Assignments, strings.Join(m.Tags, ", "), letters})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Match modules carrying any of these tags")
	return cmd
}

func newModuleDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete modules by ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid module id %q: %w", arg, err)
				}
				ids = append(ids, id)
			}

			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			count, err := store.DeleteModules(context.Background(), ids)
			if err != nil {
				return fmt.Errorf("deleted %d of %d before failing: %w", count, len(ids), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d module(s)\n", count)
			return nil
		},
	}
	return cmd
}

func readModuleFile(path string) (*course.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read module file: %w", err)
	}

	var m course.Module
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse module file: %w", err)
	}
	return &m, nil
}
