package mcp

// Toolset is a named group of FMP wrapper tools that can be selected
// together, either statically via config or at runtime through dynamic
// discovery. Init runs once per session before Register and must fail if
// the context lacks what the toolset's handlers need.
type Toolset interface {
	ID() string
	Version() string
	Init(ctx ToolsetContext) error
	Register(reg Registry) error
}
