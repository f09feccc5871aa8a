package sdk

import (
	"fmpmcp/internal/fmp"
	"fmpmcp/internal/mcp"
)

// Core toolset interfaces and types.
type Toolset = mcp.Toolset

type ToolsetContext = mcp.ToolsetContext

type ToolSpec = mcp.ToolSpec

type ToolHandler = mcp.ToolHandler

type ToolRequest = mcp.ToolRequest

type ToolResult = mcp.ToolResult

type Registry = mcp.Registry

// Declarative endpoint wrappers.
type Endpoint = mcp.Endpoint

type Param = mcp.Param

func RegisterEndpoints(reg Registry, toolsetID string, endpoints []Endpoint) error {
	return mcp.RegisterEndpoints(reg, toolsetID, endpoints)
}

func RequiredParam(name, description string) Param {
	return mcp.RequiredParam(name, description)
}

func StringParam(name, description string) Param {
	return mcp.StringParam(name, description)
}

func NumberParam(name, description string) Param {
	return mcp.NumberParam(name, description)
}

func BoolParam(name, description string) Param {
	return mcp.BoolParam(name, description)
}

func EnumParam(name, description string, values ...string) Param {
	return mcp.EnumParam(name, description, values...)
}

// Toolset registration for plugin discovery.
func RegisterToolset(id string, factory mcp.ToolsetFactory) error {
	return mcp.RegisterToolset(id, factory)
}

func MustRegisterToolset(id string, factory mcp.ToolsetFactory) {
	mcp.MustRegisterToolset(id, factory)
}

func RegisteredToolsets() []string {
	return mcp.RegisteredToolsets()
}

// FMP API client surface.
type Client = fmp.Client

type APIError = fmp.APIError

func StatusOf(err error) int {
	return fmp.StatusOf(err)
}
