package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"fmpmcp/pkg/server"

	_ "fmpmcp/toolsets/analyst"
	_ "fmpmcp/toolsets/calendar"
	_ "fmpmcp/toolsets/chart"
	_ "fmpmcp/toolsets/commodity"
	_ "fmpmcp/toolsets/company"
	_ "fmpmcp/toolsets/crypto"
	_ "fmpmcp/toolsets/directory"
	_ "fmpmcp/toolsets/economics"
	_ "fmpmcp/toolsets/etf"
	_ "fmpmcp/toolsets/forex"
	_ "fmpmcp/toolsets/indexes"
	_ "fmpmcp/toolsets/insider"
	_ "fmpmcp/toolsets/market"
	_ "fmpmcp/toolsets/news"
	_ "fmpmcp/toolsets/quotes"
	_ "fmpmcp/toolsets/search"
	_ "fmpmcp/toolsets/senate"
	_ "fmpmcp/toolsets/statements"
)

const version = "0.1.0"

var runServer = server.Run
var exit = os.Exit

func main() {
	ctx := context.Background()

	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	accessToken := flags.String("fmp-token", "", "FMP access token")
	toolsets := flags.String("fmp-tool-sets", "", "comma-separated toolsets to enable")
	dynamic := flags.Bool("dynamic-tool-discovery", false, "enable dynamic toolset discovery")
	configPath := flags.String("config", "", "config file path")
	transport := flags.String("transport", "", "transport: stdio or http")
	port := flags.Int("port", 0, "port for http transport")
	logLevel := flags.String("log-level", "", "log level")

	_ = flags.Parse(os.Args[1:])

	options := server.Options{
		ConfigPath: *configPath,
		Version:    version,
		Stderr:     os.Stderr,
	}
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["fmp-token"] {
		options.AccessToken = *accessToken
	}
	if set["fmp-tool-sets"] {
		options.Toolsets = parseCSV(*toolsets)
	}
	if set["dynamic-tool-discovery"] {
		options.DynamicToolsets = *dynamic
	}
	if set["transport"] {
		options.Transport = *transport
	}
	if set["port"] {
		options.Port = *port
	}
	if set["log-level"] {
		options.LogLevel = *logLevel
	}

	if err := runServer(ctx, options); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		exit(1)
	}
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
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
