package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
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
	for _, name := range []string{"quotes.quote", "quotes.batch_quote", "quotes.price_change"} {
		if _, ok := reg.Get(name); !ok {
			t.Fatalf("expected %s to be registered", name)
		}
	}
}

func TestExchangeQuotesCoercesBool(t *testing.T) {
	var gotShort string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotShort = r.URL.Query().Get("short")
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	client := fmp.New(fmp.Config{BaseURL: upstream.URL, Token: "tok"})
	reg := mcp.NewRegistry()
	if err := mcp.RegisterEndpoints(reg, "quotes", endpoints()); err != nil {
		t.Fatalf("register: %v", err)
	}
	spec, _ := reg.Get("quotes.exchange_quotes")
	_, err := spec.Handler(context.Background(), mcp.ToolRequest{
		Arguments: map[string]any{"exchange": "NASDAQ", "short": true},
		Context:   mcp.ToolContext{Client: client},
	})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if gotShort != "true" {
		t.Fatalf("unexpected short %q", gotShort)
	}
}

func TestQuoteSchemaMarksSymbolRequired(t *testing.T) {
	reg := mcp.NewRegistry()
	if err := mcp.RegisterEndpoints(reg, "quotes", endpoints()); err != nil {
		t.Fatalf("register: %v", err)
	}
	spec, _ := reg.Get("quotes.quote")
	required, ok := spec.InputSchema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "symbol" {
		t.Fatalf("unexpected required list: %#v", spec.InputSchema["required"])
	}
}
