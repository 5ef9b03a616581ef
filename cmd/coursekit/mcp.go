package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/course-kit/coursekit/internal/config"
	"github.com/course-kit/coursekit/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Start the Model Context Protocol server exposing the course store over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			courseRoot, err := config.ResolveCourseRoot(courseFlag)
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(courseRoot, newLogger())
			if err != nil {
				return err
			}

			return server.Run(context.Background())
		},
	}
	return cmd
}
