package company

import (
	"errors"

	"fmpmcp/internal/mcp"
)

type Toolset struct {
	ctx mcp.ToolsetContext
}

func New() *Toolset {
	return &Toolset{}
}

func init() {
	mcp.MustRegisterToolset("company", func() mcp.Toolset {
		return New()
	})
}

func (t *Toolset) ID() string {
	return "company"
}

func (t *Toolset) Version() string {
	return "0.1.0"
}

func (t *Toolset) Init(ctx mcp.ToolsetContext) error {
	if ctx.Client == nil {
		return errors.New("missing fmp client")
	}
	t.ctx = ctx
	return nil
}

func (t *Toolset) Register(reg mcp.Registry) error {
	return mcp.RegisterEndpoints(reg, t.ID(), endpoints())
}
