package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"fmpmcp/internal/audit"
	"fmpmcp/internal/cache"
	"fmpmcp/internal/config"
	"fmpmcp/internal/fmp"
	"fmpmcp/internal/mcp"
)

// Builder assembles MCP server instances per session and caches them keyed
// by a hash of the session's access token, so repeated requests from the
// same caller reuse one instance instead of rebuilding the tool surface.
type Builder struct {
	cfg     config.Config
	client  *fmp.Client
	logger  *zap.Logger
	audit   *audit.Logger
	version string
	cache   *cache.Store
	ttl     time.Duration
}

func NewBuilder(cfg config.Config, client *fmp.Client, logger *zap.Logger, auditLogger *audit.Logger, version string) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		cfg:     cfg,
		client:  client,
		logger:  logger,
		audit:   auditLogger,
		version: version,
		cache:   cache.NewStore(cfg.Cache.Capacity),
		ttl:     time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	}
}

func (b *Builder) Mode() Mode {
	return ModeFor(b.cfg)
}

// TokenKey derives the cache key for a token. Raw tokens are never stored.
func TokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ServerFor returns the cached server instance for the token, building one
// on miss. Concurrent misses may build twice; last write wins, which is
// acceptable because builds are cheap and side-effect free.
func (b *Builder) ServerFor(token string) (*sdkmcp.Server, error) {
	key := TokenKey(token)
	if cached, ok := b.cache.Get(key); ok {
		return cached.(*sdkmcp.Server), nil
	}
	server, err := b.Build(token)
	if err != nil {
		return nil, err
	}
	b.cache.Set(key, server, b.ttl)
	return server, nil
}

// CachedSessions reports how many server instances are currently cached.
func (b *Builder) CachedSessions() int {
	return b.cache.Len()
}

// NewServer returns an empty server instance ready for Attach.
func (b *Builder) NewServer() *sdkmcp.Server {
	return sdkmcp.NewServer(&sdkmcp.Implementation{Name: "fmpmcp", Version: b.version}, nil)
}

// Build assembles a fresh server instance for the token according to the
// mode decision table.
func (b *Builder) Build(token string) (*sdkmcp.Server, error) {
	server := b.NewServer()
	if _, err := b.Attach(server, token); err != nil {
		return nil, err
	}
	return server, nil
}

// Attach registers the mode-appropriate tools onto an existing server and
// returns the registered tool names so a caller can remove them again on
// reload.
func (b *Builder) Attach(server *sdkmcp.Server, token string) ([]string, error) {
	session := uuid.NewString()
	toolCtx := mcp.ToolContext{
		Config:  &b.cfg,
		Client:  b.client,
		Token:   token,
		Session: session,
		Audit:   b.audit,
		Logger:  b.logger,
	}

	mode := b.Mode()
	var names []string

	switch mode {
	case ModeDynamic:
		state := mcp.NewDynamicState()
		metaNames, err := registerMetaTools(server, state, toolCtx)
		if err != nil {
			return nil, err
		}
		names = append(names, metaNames...)
		for _, id := range b.cfg.Toolsets {
			if _, err := enableToolset(server, state, toolCtx, id); err != nil {
				return nil, err
			}
			names = append(names, state.ToolNames(id)...)
		}
	case ModeStatic:
		registered, err := registerToolsets(server, toolCtx, b.cfg.Toolsets)
		if err != nil {
			return nil, err
		}
		names = registered
	default:
		registered, err := registerToolsets(server, toolCtx, mcp.RegisteredToolsets())
		if err != nil {
			return nil, err
		}
		names = registered
	}

	b.logger.Info("session server built",
		zap.String("session", session),
		zap.String("mode", mode.String()),
		zap.Int("tools", len(names)),
		zap.String("tokenKey", TokenKey(token)[:12]),
	)
	return names, nil
}

func registerToolsets(server *sdkmcp.Server, toolCtx mcp.ToolContext, ids []string) ([]string, error) {
	reg := mcp.NewRegistry()
	toolCtx.Registry = reg
	for _, id := range ids {
		if err := buildToolset(reg, toolCtx, id); err != nil {
			return nil, err
		}
	}
	names, err := mcp.RegisterSDKTools(server, reg, toolCtx)
	if err != nil {
		return nil, fmt.Errorf("tool registration failed: %w", err)
	}
	return names, nil
}

func buildToolset(reg mcp.Registry, toolCtx mcp.ToolContext, id string) error {
	factory, ok := mcp.ToolsetFactoryFor(id)
	if !ok {
		return fmt.Errorf("unknown toolset: %s", id)
	}
	toolset := factory()
	if err := toolset.Init(toolCtx); err != nil {
		return fmt.Errorf("init toolset %s: %w", id, err)
	}
	if err := toolset.Register(reg); err != nil {
		return fmt.Errorf("register toolset %s: %w", id, err)
	}
	return nil
}
