package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"manualqa/internal/rag"
)

type askInput struct {
	Question   string `json:"question" jsonschema:"the question to answer from the indexed manuals"`
	SearchType string `json:"search_type,omitempty" jsonschema:"vector or hybrid, defaults to hybrid"`
}

type askOutput struct {
	Answer     string       `json:"answer"`
	Confidence float64      `json:"confidence"`
	Sources    []rag.Source `json:"sources"`
	Error      string       `json:"error,omitempty"`
}

type searchInput struct {
	Question string `json:"question" jsonschema:"text to search the indexed manuals for"`
	K        int    `json:"k,omitempty" jsonschema:"number of passages to return, defaults to 5"`
}

type searchOutput struct {
	Sources []rag.Source `json:"sources"`
	Error   string       `json:"error,omitempty"`
}

func (s *Server) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_manual",
		Description: "Answer a question using the indexed product manuals. Responses are in Korean and cite page numbers.",
	}, s.askManual)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_manual",
		Description: "Retrieve the most relevant manual passages for a question without generating an answer.",
	}, s.searchManual)
}

func (s *Server) askManual(ctx context.Context, req *mcp.CallToolRequest, in askInput) (*mcp.CallToolResult, askOutput, error) {
	result := s.rag.Query(ctx, in.Question, in.SearchType, 0)

	return nil, askOutput{
		Answer:     result.Answer,
		Confidence: result.Confidence,
		Sources:    result.Sources,
		Error:      result.Err,
	}, nil
}

func (s *Server) searchManual(ctx context.Context, req *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, searchOutput, error) {
	result := s.rag.Query(ctx, in.Question, "", in.K)

	return nil, searchOutput{
		Sources: result.Sources,
		Error:   result.Err,
	}, nil
}
