// Package mcp exposes the assignment store over the Model Context Protocol,
// the stdio surface that replaces the desktop tool's IPC layer.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/course-kit/coursekit/internal/database"
	"github.com/course-kit/coursekit/internal/usecase"
)

// Server wraps the MCP server with course store functionality.
type Server struct {
	server *mcp.Server
	store  *usecase.Store
	dbCtx  *database.Context
}

// NewServer creates an MCP server bound to one course root.
func NewServer(courseRoot string, logger *zap.Logger) (*Server, error) {
	dbCtx, err := database.Open(courseRoot)
	if err != nil {
		return nil, fmt.Errorf("open course database: %w", err)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "coursekit",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		server: mcpServer,
		store:  usecase.NewStore(courseRoot, dbCtx, logger),
		dbCtx:  dbCtx,
	}

	s.registerTools()
	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	defer func() {
		_ = database.Close(s.dbCtx)
	}()
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "course_filter",
		Description: "List assignments matching tag, module, and title filters",
	}, s.handleFilter)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "course_get",
		Description: "Retrieve the full assignment record by ID",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "course_tags",
		Description: "List tags and their members in either tag space",
	}, s.handleTags)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "course_delete",
		Description: "Delete assignments by ID",
	}, s.handleDelete)
}
