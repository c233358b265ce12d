package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"manualqa/internal/rag"
	"manualqa/pkg/logger_i"
)

// Server exposes the question answering pipeline over the model context
// protocol, so agent frontends can use the manuals as a tool.
type Server struct {
	rag    rag.Service
	logger *logger_i.Logger
}

func NewServer(ragService rag.Service) *Server {
	return &Server{
		rag:    ragService,
		logger: logger_i.NewLogger("MCPServer"),
	}
}

// Run serves tools over stdio until the context ends.
func (s *Server) Run(ctx context.Context) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "manualqa",
		Version: "1.0.0",
	}, nil)

	s.registerTools(server)

	s.logger.Info("mcp server listening on stdio")
	return server.Run(ctx, &mcp.StdioTransport{})
}
