package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fmpmcp/internal/audit"
	"fmpmcp/internal/config"
	"fmpmcp/internal/fmp"
	"fmpmcp/internal/session"
)

type Options struct {
	ConfigPath      string
	AccessToken     string
	Toolsets        []string
	DynamicToolsets bool
	Transport       string
	Port            int
	LogLevel        string
	Version         string
	Stderr          io.Writer
}

func Run(ctx context.Context, opts Options) error {
	errOut := opts.Stderr
	if errOut == nil {
		errOut = os.Stderr
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		if env := os.Getenv("FMPMCP_CONFIG"); env != "" {
			configPath = env
		}
	}
	overrides := config.Overrides{}
	if opts.AccessToken != "" {
		overrides.AccessToken = &opts.AccessToken
	}
	if len(opts.Toolsets) > 0 {
		overrides.Toolsets = &opts.Toolsets
	}
	if opts.DynamicToolsets {
		overrides.DynamicToolsets = &opts.DynamicToolsets
	}
	if opts.Transport != "" {
		overrides.Transport = &opts.Transport
	}
	if opts.Port != 0 {
		overrides.Port = &opts.Port
	}
	if opts.LogLevel != "" {
		overrides.LogLevel = &opts.LogLevel
	}

	cfg, err := config.Load(configPath, "", overrides)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer logger.Sync()

	client := fmp.New(fmp.Config{
		BaseURL:   cfg.BaseURL,
		Token:     cfg.AccessToken,
		UserAgent: "fmpmcp/" + opts.Version,
	})
	auditLogger := audit.NewLogger(errOut)
	builder := session.NewBuilder(cfg, client, logger, auditLogger, opts.Version)

	switch cfg.Transport {
	case config.TransportHTTP:
		return runHTTP(ctx, builder, cfg, logger)
	case config.TransportStdio, "":
		return runStdio(ctx, builder, cfg, logger, configPath, overrides, client, auditLogger, errOut, opts.Version)
	default:
		return fmt.Errorf("unknown transport: %s", cfg.Transport)
	}
}

func runStdio(ctx context.Context, builder *session.Builder, cfg config.Config, logger *zap.Logger, configPath string, overrides config.Overrides, client *fmp.Client, auditLogger *audit.Logger, errOut io.Writer, version string) error {
	server := builder.NewServer()
	toolNames, err := builder.Attach(server, cfg.AccessToken)
	if err != nil {
		return fmt.Errorf("init failed: %w", err)
	}
	logger.Info("starting stdio transport", zap.String("mode", builder.Mode().String()), zap.Int("tools", len(toolNames)))

	reloadCh := make(chan os.Signal, 1)
	notifyReload(reloadCh)
	go func() {
		for range reloadCh {
			cfg, err := config.Load(configPath, "", overrides)
			if err != nil {
				logger.Error("config reload failed", zap.Error(err))
				continue
			}
			reloaded := session.NewBuilder(cfg, client, logger, auditLogger, version)
			if len(toolNames) > 0 {
				server.RemoveTools(toolNames...)
			}
			toolNames, err = reloaded.Attach(server, cfg.AccessToken)
			if err != nil {
				logger.Error("reload init failed", zap.Error(err))
				continue
			}
			logger.Info("configuration reloaded", zap.Int("tools", len(toolNames)))
		}
	}()

	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runHTTP(ctx context.Context, builder *session.Builder, cfg config.Config, logger *zap.Logger) error {
	handler := sdkmcp.NewStreamableHTTPHandler(func(r *http.Request) *sdkmcp.Server {
		token := tokenFromRequest(r)
		server, err := builder.ServerFor(token)
		if err != nil {
			logger.Error("session build failed", zap.Error(err))
			return nil
		}
		return server
	}, &sdkmcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, builder.CachedSessions())
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http transport", zap.Int("port", cfg.Port), zap.String("mode", builder.Mode().String()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// tokenFromRequest resolves the caller's FMP access token. Query parameter
// wins, then X-Api-Key, then a bearer Authorization header; an empty result
// means per-call requests fall back to the configured server-wide token.
func tokenFromRequest(r *http.Request) string {
	if token := strings.TrimSpace(r.URL.Query().Get("apikey")); token != "" {
		return token
	}
	if token := strings.TrimSpace(r.Header.Get("X-Api-Key")); token != "" {
		return token
	}
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[len("bearer "):])
	}
	return ""
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(parsed)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	return zapCfg.Build()
}
