package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultBaseURL = "https://financialmodelingprep.com"

	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	AccessToken     string         `toml:"access_token"`
	BaseURL         string         `toml:"base_url"`
	Toolsets        []string       `toml:"toolsets"`
	DynamicToolsets bool           `toml:"dynamic_toolsets"`
	Transport       string         `toml:"transport"`
	Port            int            `toml:"port"`
	LogLevel        string         `toml:"log_level"`
	Cache           CacheConfig    `toml:"cache"`
	Timeouts        TimeoutsConfig `toml:"timeouts"`
}

type CacheConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
	Capacity   int `toml:"capacity"`
}

type TimeoutsConfig struct {
	DefaultSeconds int            `toml:"default_seconds"`
	MaxSeconds     int            `toml:"max_seconds"`
	PerTool        map[string]int `toml:"per_tool"`
}

type Overrides struct {
	AccessToken     *string
	BaseURL         *string
	Toolsets        *[]string
	DynamicToolsets *bool
	Transport       *string
	Port            *int
	LogLevel        *string
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Transport: TransportStdio,
		Port:      8080,
		LogLevel:  "info",
		Cache: CacheConfig{
			TTLSeconds: 1800,
			Capacity:   64,
		},
		Timeouts: TimeoutsConfig{
			DefaultSeconds: 25,
		},
	}
}

func Load(path string, dir string, overrides Overrides) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return cfg, err
		}
		merge(&cfg, fileCfg)
	}

	if dir != "" {
		files, err := dropInFiles(dir)
		if err != nil {
			return cfg, err
		}
		for _, file := range files {
			fileCfg, err := readFile(file)
			if err != nil {
				return cfg, err
			}
			merge(&cfg, fileCfg)
		}
	}

	applyEnv(&cfg)
	applyOverrides(&cfg, overrides)
	return cfg, nil
}

func readFile(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func dropInFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func merge(dst *Config, src Config) {
	if src.AccessToken != "" {
		dst.AccessToken = src.AccessToken
	}
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if len(src.Toolsets) > 0 {
		dst.Toolsets = append([]string{}, src.Toolsets...)
	}
	if src.DynamicToolsets {
		dst.DynamicToolsets = src.DynamicToolsets
	}
	if src.Transport != "" {
		dst.Transport = src.Transport
	}
	if src.Port != 0 {
		dst.Port = src.Port
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Cache.TTLSeconds != 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	if src.Cache.Capacity != 0 {
		dst.Cache.Capacity = src.Cache.Capacity
	}
	if src.Timeouts.DefaultSeconds != 0 {
		dst.Timeouts.DefaultSeconds = src.Timeouts.DefaultSeconds
	}
	if src.Timeouts.MaxSeconds != 0 {
		dst.Timeouts.MaxSeconds = src.Timeouts.MaxSeconds
	}
	if len(src.Timeouts.PerTool) > 0 {
		dst.Timeouts.PerTool = map[string]int{}
		for name, seconds := range src.Timeouts.PerTool {
			dst.Timeouts.PerTool[name] = seconds
		}
	}
}

func applyEnv(cfg *Config) {
	if token := os.Getenv("FMP_ACCESS_TOKEN"); token != "" {
		cfg.AccessToken = token
	}
	if base := os.Getenv("FMP_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	if sets := os.Getenv("FMP_TOOL_SETS"); sets != "" {
		cfg.Toolsets = splitCSV(sets)
	}
	if dynamic := os.Getenv("DYNAMIC_TOOL_DISCOVERY"); dynamic != "" {
		if parsed, err := strconv.ParseBool(dynamic); err == nil {
			cfg.DynamicToolsets = parsed
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil && parsed > 0 {
			cfg.Port = parsed
		}
	}
}

func applyOverrides(cfg *Config, overrides Overrides) {
	if overrides.AccessToken != nil {
		cfg.AccessToken = *overrides.AccessToken
	}
	if overrides.BaseURL != nil {
		cfg.BaseURL = *overrides.BaseURL
	}
	if overrides.Toolsets != nil {
		cfg.Toolsets = append([]string{}, (*overrides.Toolsets)...)
	}
	if overrides.DynamicToolsets != nil {
		cfg.DynamicToolsets = *overrides.DynamicToolsets
	}
	if overrides.Transport != nil {
		cfg.Transport = *overrides.Transport
	}
	if overrides.Port != nil {
		cfg.Port = *overrides.Port
	}
	if overrides.LogLevel != nil {
		cfg.LogLevel = *overrides.LogLevel
	}
}

func splitCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
