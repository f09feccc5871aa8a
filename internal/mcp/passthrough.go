package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Param describes one query parameter of an FMP endpoint.
type Param struct {
	Name        string
	Type        string // "string", "number", "integer", "boolean"
	Required    bool
	Description string
	Enum        []string
}

// Endpoint declares a one-to-one wrapper tool over a single FMP endpoint.
// The generated handler validates required parameters, maps arguments to
// query values, and returns the upstream body verbatim.
type Endpoint struct {
	Name        string
	Description string
	Path        string
	Params      []Param
}

func (e Endpoint) ToolSpec(toolsetID string) ToolSpec {
	return ToolSpec{
		Name:        toolsetID + "." + e.Name,
		Description: e.Description,
		ToolsetID:   toolsetID,
		InputSchema: e.schema(),
		Handler:     e.handler(),
	}
}

func (e Endpoint) schema() map[string]any {
	properties := map[string]any{}
	var required []string
	for _, param := range e.Params {
		prop := map[string]any{"type": jsonType(param.Type)}
		if param.Description != "" {
			prop["description"] = param.Description
		}
		if len(param.Enum) > 0 {
			prop["enum"] = param.Enum
		}
		properties[param.Name] = prop
		if param.Required {
			required = append(required, param.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func (e Endpoint) handler() ToolHandler {
	return func(ctx context.Context, req ToolRequest) (ToolResult, error) {
		query := url.Values{}
		for _, param := range e.Params {
			raw, ok := req.Arguments[param.Name]
			if !ok || raw == nil {
				if param.Required {
					return ToolResult{Endpoint: e.Path}, fmt.Errorf("%s is required", param.Name)
				}
				continue
			}
			value, err := coerceArg(param, raw)
			if err != nil {
				return ToolResult{Endpoint: e.Path}, err
			}
			if value == "" && !param.Required {
				continue
			}
			query.Set(param.Name, value)
		}
		if req.Context.Client == nil {
			return ToolResult{Endpoint: e.Path}, fmt.Errorf("fmp client not configured")
		}
		body, err := req.Context.Client.Get(ctx, e.Path, req.Token, query)
		if err != nil {
			return ToolResult{Endpoint: e.Path}, err
		}
		return ToolResult{Body: body, Endpoint: e.Path}, nil
	}
}

func coerceArg(param Param, raw any) (string, error) {
	switch value := raw.(type) {
	case string:
		if param.Required && value == "" {
			return "", fmt.Errorf("%s is required", param.Name)
		}
		return value, nil
	case bool:
		if param.Type != "boolean" {
			return "", fmt.Errorf("%s must be a %s", param.Name, param.Type)
		}
		return strconv.FormatBool(value), nil
	case float64:
		if param.Type != "number" && param.Type != "integer" {
			return "", fmt.Errorf("%s must be a %s", param.Name, param.Type)
		}
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10), nil
		}
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	default:
		return "", fmt.Errorf("%s has unsupported type %T", param.Name, raw)
	}
}

func jsonType(paramType string) string {
	switch paramType {
	case "number", "integer", "boolean", "array", "object":
		return paramType
	default:
		return "string"
	}
}

// RegisterEndpoints converts an endpoint table into tool specs on a registry.
func RegisterEndpoints(reg Registry, toolsetID string, endpoints []Endpoint) error {
	for _, endpoint := range endpoints {
		if err := reg.Add(endpoint.ToolSpec(toolsetID)); err != nil {
			return fmt.Errorf("register %s.%s: %w", toolsetID, endpoint.Name, err)
		}
	}
	return nil
}
