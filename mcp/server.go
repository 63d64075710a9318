package mcp

import (
	"github.com/masinc/search-cli/config"
	"github.com/masinc/search-cli/search"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for search
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg config.Config, opener search.Opener) *Server {
	s := server.NewMCPServer("search", "0.1.0")

	s.AddTools(InitTools(cfg, opener)...)

	return &Server{
		server: s,
	}
}

// Run starts the MCP server
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
