package etf

import (
	"testing"

	"fmpmcp/internal/fmp"
	"fmpmcp/internal/mcp"
)

func TestToolsetInitAndRegister(t *testing.T) {
	toolset := New()
	if err := toolset.Init(mcp.ToolsetContext{}); err == nil {
		t.Fatalf("expected error for missing client")
	}
	if err := toolset.Init(mcp.ToolsetContext{Client: fmp.New(fmp.Config{})}); err != nil {
		t.Fatalf("init: %v", err)
	}
	reg := mcp.NewRegistry()
	if err := toolset.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	for _, name := range []string{"etf.info", "etf.holdings", "etf.sector_weightings"} {
		if _, ok := reg.Get(name); !ok {
			t.Fatalf("expected %s to be registered", name)
		}
	}
}
