package session

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmpmcp/internal/config"
	"fmpmcp/internal/fmp"
	"fmpmcp/internal/mcp"
)

type fakeToolset struct {
	id        string
	endpoints []mcp.Endpoint
}

func (t *fakeToolset) ID() string                        { return t.id }
func (t *fakeToolset) Version() string                   { return "0.1.0" }
func (t *fakeToolset) Init(ctx mcp.ToolsetContext) error { return nil }
func (t *fakeToolset) Register(reg mcp.Registry) error {
	return mcp.RegisterEndpoints(reg, t.id, t.endpoints)
}

func registerFakeToolsets(t *testing.T) {
	t.Helper()
	for _, id := range []string{"alpha", "beta"} {
		id := id
		err := mcp.RegisterToolset(id, func() mcp.Toolset {
			return &fakeToolset{id: id, endpoints: []mcp.Endpoint{
				{Name: "one", Description: "first", Path: "stable/one"},
				{Name: "two", Description: "second", Path: "stable/two"},
			}}
		})
		if err != nil && err.Error() != "toolset already registered" {
			t.Fatalf("register fake toolset: %v", err)
		}
	}
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.AccessToken = "config-token"
	return cfg
}

func TestModeFor(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, ModeAll, ModeFor(cfg))

	cfg.Toolsets = []string{"alpha"}
	assert.Equal(t, ModeStatic, ModeFor(cfg))

	cfg.DynamicToolsets = true
	assert.Equal(t, ModeDynamic, ModeFor(cfg))

	assert.Equal(t, "all", ModeAll.String())
	assert.Equal(t, "static", ModeStatic.String())
	assert.Equal(t, "dynamic", ModeDynamic.String())
}

func TestTokenKeyHidesToken(t *testing.T) {
	key := TokenKey("my-secret-token")
	assert.NotContains(t, key, "my-secret-token")
	assert.Len(t, key, 64)
	assert.Equal(t, key, TokenKey("my-secret-token"))
	assert.NotEqual(t, key, TokenKey("other-token"))
}

func TestServerForCachesByToken(t *testing.T) {
	registerFakeToolsets(t)
	builder := NewBuilder(testConfig(), fmp.New(fmp.Config{}), nil, nil, "test")

	first, err := builder.ServerFor("token-a")
	require.NoError(t, err)
	second, err := builder.ServerFor("token-a")
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := builder.ServerFor("token-b")
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, builder.CachedSessions())
}

func TestServerForRebuildsAfterTTL(t *testing.T) {
	registerFakeToolsets(t)
	cfg := testConfig()
	cfg.Cache.TTLSeconds = 1
	builder := NewBuilder(cfg, fmp.New(fmp.Config{}), nil, nil, "test")
	builder.ttl = 5 * time.Millisecond

	first, err := builder.ServerFor("token-a")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := builder.ServerFor("token-a")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestServerForEvictsBeyondCapacity(t *testing.T) {
	registerFakeToolsets(t)
	cfg := testConfig()
	cfg.Cache.Capacity = 2
	builder := NewBuilder(cfg, fmp.New(fmp.Config{}), nil, nil, "test")

	_, err := builder.ServerFor("token-a")
	require.NoError(t, err)
	_, err = builder.ServerFor("token-b")
	require.NoError(t, err)
	_, err = builder.ServerFor("token-c")
	require.NoError(t, err)
	assert.Equal(t, 2, builder.CachedSessions())
}

func TestBuildStaticUnknownToolset(t *testing.T) {
	registerFakeToolsets(t)
	cfg := testConfig()
	cfg.Toolsets = []string{"no-such-toolset"}
	builder := NewBuilder(cfg, fmp.New(fmp.Config{}), nil, nil, "test")
	_, err := builder.Build("token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown toolset")
}

func TestBuildDynamicRegistersInitialToolsets(t *testing.T) {
	registerFakeToolsets(t)
	cfg := testConfig()
	cfg.DynamicToolsets = true
	cfg.Toolsets = []string{"alpha"}
	builder := NewBuilder(cfg, fmp.New(fmp.Config{}), nil, nil, "test")
	server, err := builder.Build("token")
	require.NoError(t, err)
	require.NotNil(t, server)
}

func TestAttachReturnsRegisteredNames(t *testing.T) {
	registerFakeToolsets(t)
	cfg := testConfig()
	cfg.DynamicToolsets = true
	cfg.Toolsets = []string{"alpha"}
	builder := NewBuilder(cfg, fmp.New(fmp.Config{}), nil, nil, "test")
	server := builder.NewServer()
	names, err := builder.Attach(server, "token")
	require.NoError(t, err)
	assert.Contains(t, names, "toolsets.enable")
	assert.Contains(t, names, "toolsets.list")
	assert.Contains(t, names, "alpha.one")
	assert.Contains(t, names, "alpha.two")
}

func metaTestContext() (*sdkmcp.Server, *mcp.DynamicState, mcp.ToolContext) {
	cfg := testConfig()
	toolCtx := mcp.ToolContext{Config: &cfg, Client: fmp.New(fmp.Config{})}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "fmpmcp", Version: "test"}, nil)
	return server, mcp.NewDynamicState(), toolCtx
}

func callMeta(t *testing.T, handler mcp.ToolHandler, args map[string]any) map[string]any {
	t.Helper()
	result, err := handler(context.Background(), mcp.ToolRequest{Arguments: args})
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(result.Body, &payload))
	return payload
}

func TestEnableDisableToolsetHandlers(t *testing.T) {
	registerFakeToolsets(t)
	server, state, toolCtx := metaTestContext()

	enable := enableToolsetHandler(server, state, toolCtx)
	payload := callMeta(t, enable, map[string]any{"toolset": "alpha"})
	assert.Equal(t, "enabled", payload["status"])
	assert.True(t, state.IsEnabled("alpha"))
	assert.Equal(t, []string{"alpha.one", "alpha.two"}, state.ToolNames("alpha"))

	payload = callMeta(t, enable, map[string]any{"toolset": "alpha"})
	assert.Equal(t, "already enabled", payload["status"])

	disable := disableToolsetHandler(server, state)
	payload = callMeta(t, disable, map[string]any{"toolset": "alpha"})
	assert.Equal(t, "disabled", payload["status"])
	assert.False(t, state.IsEnabled("alpha"))

	payload = callMeta(t, disable, map[string]any{"toolset": "alpha"})
	assert.Equal(t, "not enabled", payload["status"])
}

func TestConcurrentEnableSameToolset(t *testing.T) {
	registerFakeToolsets(t)
	server, state, toolCtx := metaTestContext()
	enable := enableToolsetHandler(server, state, toolCtx)

	const callers = 8
	type outcome struct {
		result mcp.ToolResult
		err    error
	}
	outcomes := make(chan outcome, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := enable(context.Background(), mcp.ToolRequest{Arguments: map[string]any{"toolset": "alpha"}})
			outcomes <- outcome{result: result, err: err}
		}()
	}
	wg.Wait()
	close(outcomes)

	enabled := 0
	for out := range outcomes {
		require.NoError(t, out.err)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(out.result.Body, &payload))
		switch payload["status"] {
		case "enabled":
			enabled++
		case "already enabled":
		default:
			t.Fatalf("unexpected status %q", payload["status"])
		}
	}
	assert.Equal(t, 1, enabled)
	assert.True(t, state.IsEnabled("alpha"))
	assert.Equal(t, []string{"alpha.one", "alpha.two"}, state.ToolNames("alpha"))
}

func TestDisableMetaToolsetRefused(t *testing.T) {
	server, state, _ := metaTestContext()
	disable := disableToolsetHandler(server, state)
	_, err := disable(context.Background(), mcp.ToolRequest{Arguments: map[string]any{"toolset": metaToolsetID}})
	require.Error(t, err)
}

func TestEnableUnknownToolset(t *testing.T) {
	server, state, toolCtx := metaTestContext()
	enable := enableToolsetHandler(server, state, toolCtx)
	_, err := enable(context.Background(), mcp.ToolRequest{Arguments: map[string]any{"toolset": "no-such"}})
	require.Error(t, err)
}

func TestListAndDescribeToolsets(t *testing.T) {
	registerFakeToolsets(t)
	_, state, toolCtx := metaTestContext()

	list := listToolsetsHandler(state, toolCtx)
	payload := callMeta(t, list, nil)
	toolsets := payload["toolsets"].([]any)
	assert.GreaterOrEqual(t, len(toolsets), 2)

	describe := describeToolsetHandler(toolCtx)
	payload = callMeta(t, describe, map[string]any{"toolset": "alpha"})
	assert.Equal(t, "alpha", payload["toolset"])
	tools := payload["tools"].([]any)
	require.Len(t, tools, 2)
	first := tools[0].(map[string]any)
	assert.Equal(t, "alpha.one", first["name"])
}

func TestToolsetArgValidation(t *testing.T) {
	_, err := toolsetArg(mcp.ToolRequest{Arguments: map[string]any{}})
	require.Error(t, err)
	_, err = toolsetArg(mcp.ToolRequest{Arguments: map[string]any{"toolset": 5}})
	require.Error(t, err)
	id, err := toolsetArg(mcp.ToolRequest{Arguments: map[string]any{"toolset": "quotes"}})
	require.NoError(t, err)
	assert.Equal(t, "quotes", id)
}
