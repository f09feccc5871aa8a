package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	sdkjsonrpc "github.com/modelcontextprotocol/go-sdk/jsonrpc"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"fmpmcp/internal/audit"
	"fmpmcp/internal/config"
)

func TestRegisterSDKToolsAndToolHandler(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := NewRegistry()
	called := false
	spec := ToolSpec{
		Name:      "demo",
		ToolsetID: "core",
		InputSchema: map[string]any{
			"type": "object",
		},
		Handler: func(ctx context.Context, req ToolRequest) (ToolResult, error) {
			called = true
			return ToolResult{Body: []byte(`{"ok":true}`), Endpoint: "stable/demo"}, nil
		},
	}
	_ = reg.Add(spec)
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "fmpmcp", Version: "test"}, nil)
	toolCtx := ToolContext{
		Config: &cfg,
		Audit:  audit.NewLogger(io.Discard),
	}
	tools, err := RegisterSDKTools(server, reg, toolCtx)
	if err != nil {
		t.Fatalf("register tools: %v", err)
	}
	if len(tools) != 1 || tools[0] != "demo" {
		t.Fatalf("unexpected tools list: %#v", tools)
	}

	handler := toolHandler(spec, toolCtx)
	args, _ := json.Marshal(map[string]any{"symbol": "AAPL"})
	req := &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: "demo", Arguments: args}}
	_, err = handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("expected handler to be called")
	}
}

func TestRegisterSDKToolsNilArgs(t *testing.T) {
	if _, err := RegisterSDKTools(nil, nil, ToolContext{}); err == nil {
		t.Fatalf("expected error for nil server/registry")
	}
}

func TestBuildCallToolResultJSONBody(t *testing.T) {
	result := ToolResult{Body: []byte(`[{"symbol":"AAPL"}]`)}
	out := buildCallToolResult(result, nil)
	if out.StructuredContent == nil {
		t.Fatalf("expected structured content for JSON body")
	}
	text, ok := out.Content[0].(*sdkmcp.TextContent)
	if !ok || text.Text != `[{"symbol":"AAPL"}]` {
		t.Fatalf("expected verbatim text content, got %#v", out.Content)
	}
}

func TestBuildCallToolResultCSVBody(t *testing.T) {
	raw := "symbol,price\nAAPL,190.12\n"
	out := buildCallToolResult(ToolResult{Body: []byte(raw)}, nil)
	if out.StructuredContent != nil {
		t.Fatalf("expected no structured content for CSV body")
	}
	text, ok := out.Content[0].(*sdkmcp.TextContent)
	if !ok || text.Text != raw {
		t.Fatalf("expected verbatim CSV text, got %#v", out.Content)
	}
}

func TestBuildCallToolResultEmptyBody(t *testing.T) {
	out := buildCallToolResult(ToolResult{}, nil)
	if len(out.Content) == 0 {
		t.Fatalf("expected content for empty result")
	}
}

func TestBuildCallToolResultError(t *testing.T) {
	err := errors.New("boom")
	out := buildCallToolResult(ToolResult{}, err)
	if !out.IsError {
		t.Fatalf("expected error result")
	}
	payload, ok := out.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("expected map content")
	}
	if _, ok := payload["error"]; !ok {
		t.Fatalf("expected error envelope")
	}
}

func TestToolHandlerInvalidArgs(t *testing.T) {
	cfg := config.DefaultConfig()
	spec := ToolSpec{
		Name:      "demo",
		ToolsetID: "core",
		Handler: func(ctx context.Context, req ToolRequest) (ToolResult, error) {
			return ToolResult{}, nil
		},
	}
	handler := toolHandler(spec, ToolContext{Config: &cfg})
	req := &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: "demo", Arguments: []byte("{")}}
	_, err := handler(context.Background(), req)
	if err == nil {
		t.Fatalf("expected error for invalid args")
	}
	if _, ok := err.(*sdkjsonrpc.Error); !ok {
		t.Fatalf("expected jsonrpc error, got %T", err)
	}
}

func TestToolHandlerErrorResult(t *testing.T) {
	cfg := config.DefaultConfig()
	spec := ToolSpec{
		Name:      "demo",
		ToolsetID: "core",
		Handler: func(ctx context.Context, req ToolRequest) (ToolResult, error) {
			return ToolResult{Endpoint: "stable/demo"}, errors.New("fail")
		},
	}
	toolCtx := ToolContext{
		Config: &cfg,
		Audit:  audit.NewLogger(io.Discard),
	}
	handler := toolHandler(spec, toolCtx)
	req := &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: "demo"}}
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatalf("expected error result")
	}
}

func TestToolHandlerPassesSessionToken(t *testing.T) {
	cfg := config.DefaultConfig()
	var gotToken string
	spec := ToolSpec{
		Name:      "demo",
		ToolsetID: "core",
		Handler: func(ctx context.Context, req ToolRequest) (ToolResult, error) {
			gotToken = req.Token
			return ToolResult{}, nil
		},
	}
	handler := toolHandler(spec, ToolContext{Config: &cfg, Token: "session-token"})
	req := &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: "demo"}}
	if _, err := handler(context.Background(), req); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotToken != "session-token" {
		t.Fatalf("expected session token forwarded, got %q", gotToken)
	}
}

func TestLogAuditWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := audit.NewLogger(&buf)
	spec := ToolSpec{Name: "quotes.quote", ToolsetID: "quotes"}
	logAudit(ToolContext{Audit: logger, Session: "abc"}, spec, "stable/quote", "success", nil)
	if !strings.Contains(buf.String(), `"tool":"quotes.quote"`) {
		t.Fatalf("expected audit output, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"endpoint":"stable/quote"`) {
		t.Fatalf("expected endpoint in audit output, got %s", buf.String())
	}
}
