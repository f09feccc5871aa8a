package session

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"fmpmcp/internal/mcp"
)

const metaToolsetID = "toolsets"

// registerMetaTools installs the dynamic-discovery tools onto a server.
// They close over the live server and its activation state so enabling a
// toolset adds its tools to the running session in place.
func registerMetaTools(server *sdkmcp.Server, state *mcp.DynamicState, toolCtx mcp.ToolContext) ([]string, error) {
	reg := mcp.NewRegistry()
	specs := []mcp.ToolSpec{
		{
			Name:        "toolsets.list",
			Description: "List all available toolsets with their enabled state and tool counts.",
			ToolsetID:   metaToolsetID,
			InputSchema: map[string]any{"type": "object", "properties": map[string]any{}},
			Handler:     listToolsetsHandler(state, toolCtx),
		},
		{
			Name:        "toolsets.describe",
			Description: "List the tools a toolset provides without enabling it.",
			ToolsetID:   metaToolsetID,
			InputSchema: toolsetArgSchema(),
			Handler:     describeToolsetHandler(toolCtx),
		},
		{
			Name:        "toolsets.enable",
			Description: "Enable a toolset, adding its tools to this session.",
			ToolsetID:   metaToolsetID,
			InputSchema: toolsetArgSchema(),
			Handler:     enableToolsetHandler(server, state, toolCtx),
		},
		{
			Name:        "toolsets.disable",
			Description: "Disable a previously enabled toolset, removing its tools from this session.",
			ToolsetID:   metaToolsetID,
			InputSchema: toolsetArgSchema(),
			Handler:     disableToolsetHandler(server, state),
		},
	}
	for _, spec := range specs {
		if err := reg.Add(spec); err != nil {
			return nil, err
		}
	}
	return mcp.RegisterSDKTools(server, reg, toolCtx)
}

func toolsetArgSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"toolset": map[string]any{
				"type":        "string",
				"description": "Toolset identifier, e.g. \"quotes\" or \"statements\".",
			},
		},
		"required": []string{"toolset"},
	}
}

func listToolsetsHandler(state *mcp.DynamicState, toolCtx mcp.ToolContext) mcp.ToolHandler {
	return func(ctx context.Context, req mcp.ToolRequest) (mcp.ToolResult, error) {
		var out []map[string]any
		for _, id := range mcp.RegisteredToolsets() {
			infos, err := toolsetTools(toolCtx, id)
			if err != nil {
				return mcp.ToolResult{}, err
			}
			out = append(out, map[string]any{
				"id":      id,
				"enabled": state.IsEnabled(id),
				"tools":   len(infos),
			})
		}
		return marshalResult(map[string]any{"toolsets": out})
	}
}

func describeToolsetHandler(toolCtx mcp.ToolContext) mcp.ToolHandler {
	return func(ctx context.Context, req mcp.ToolRequest) (mcp.ToolResult, error) {
		id, err := toolsetArg(req)
		if err != nil {
			return mcp.ToolResult{}, err
		}
		infos, err := toolsetTools(toolCtx, id)
		if err != nil {
			return mcp.ToolResult{}, err
		}
		tools := make([]map[string]any, 0, len(infos))
		for _, info := range infos {
			tools = append(tools, map[string]any{
				"name":        info.Name,
				"description": info.Description,
			})
		}
		return marshalResult(map[string]any{"toolset": id, "tools": tools})
	}
}

func enableToolsetHandler(server *sdkmcp.Server, state *mcp.DynamicState, toolCtx mcp.ToolContext) mcp.ToolHandler {
	return func(ctx context.Context, req mcp.ToolRequest) (mcp.ToolResult, error) {
		id, err := toolsetArg(req)
		if err != nil {
			return mcp.ToolResult{}, err
		}
		added, err := enableToolset(server, state, toolCtx, id)
		if err != nil {
			return mcp.ToolResult{}, err
		}
		if !added {
			return marshalResult(map[string]any{"toolset": id, "status": "already enabled"})
		}
		return marshalResult(map[string]any{
			"toolset": id,
			"status":  "enabled",
			"tools":   state.ToolNames(id),
		})
	}
}

func disableToolsetHandler(server *sdkmcp.Server, state *mcp.DynamicState) mcp.ToolHandler {
	return func(ctx context.Context, req mcp.ToolRequest) (mcp.ToolResult, error) {
		id, err := toolsetArg(req)
		if err != nil {
			return mcp.ToolResult{}, err
		}
		if id == metaToolsetID {
			return mcp.ToolResult{}, fmt.Errorf("the %s toolset cannot be disabled", metaToolsetID)
		}
		names := state.Disable(id)
		if names == nil {
			return marshalResult(map[string]any{"toolset": id, "status": "not enabled"})
		}
		if len(names) > 0 {
			server.RemoveTools(names...)
		}
		return marshalResult(map[string]any{"toolset": id, "status": "disabled"})
	}
}

// enableToolset registers a toolset's tools onto a live server and records
// the names so they can be removed again. It reports false when the toolset
// was already enabled; state.Enable arbitrates concurrent enables of the
// same id (AddTool replaces by name, so the duplicate registration is
// harmless).
func enableToolset(server *sdkmcp.Server, state *mcp.DynamicState, toolCtx mcp.ToolContext, id string) (bool, error) {
	if state.IsEnabled(id) {
		return false, nil
	}
	reg := mcp.NewRegistry()
	toolCtx.Registry = reg
	if err := buildToolset(reg, toolCtx, id); err != nil {
		return false, err
	}
	names, err := mcp.RegisterSDKTools(server, reg, toolCtx)
	if err != nil {
		return false, err
	}
	return state.Enable(id, names)
}

// toolsetTools builds a toolset into a scratch registry to inspect its tool
// list without touching any live server.
func toolsetTools(toolCtx mcp.ToolContext, id string) ([]mcp.ToolInfo, error) {
	reg := mcp.NewRegistry()
	toolCtx.Registry = reg
	if err := buildToolset(reg, toolCtx, id); err != nil {
		return nil, err
	}
	return reg.List(), nil
}

func toolsetArg(req mcp.ToolRequest) (string, error) {
	raw, ok := req.Arguments["toolset"]
	if !ok {
		return "", fmt.Errorf("toolset is required")
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("toolset is required")
	}
	return id, nil
}

func marshalResult(payload map[string]any) (mcp.ToolResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return mcp.ToolResult{}, err
	}
	return mcp.ToolResult{Body: body}, nil
}
