package mcp

import (
	"context"

	"go.uber.org/zap"

	"fmpmcp/internal/audit"
	"fmpmcp/internal/config"
	"fmpmcp/internal/fmp"
)

type ToolHandler func(ctx context.Context, req ToolRequest) (ToolResult, error)

type ToolSpec struct {
	Name        string
	Description string
	ToolsetID   string
	InputSchema map[string]any
	Handler     ToolHandler
}

type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type ToolRequest struct {
	Arguments map[string]any
	Token     string
	Context   ToolContext
}

// ToolResult carries the upstream body verbatim. Endpoint is the API path the
// tool hit, recorded in audit events.
type ToolResult struct {
	Body     []byte
	Endpoint string
}

type ToolContext struct {
	Config   *config.Config
	Client   *fmp.Client
	Token    string
	Session  string
	Audit    *audit.Logger
	Logger   *zap.Logger
	Registry Registry
}

type ToolsetContext = ToolContext
