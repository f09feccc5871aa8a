package main

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"testing"

	"fmpmcp/pkg/server"
)

func TestMainSuccessFlags(t *testing.T) {
	origRun := runServer
	origExit := exit
	origArgs := os.Args
	origStderr := os.Stderr
	t.Cleanup(func() {
		runServer = origRun
		exit = origExit
		os.Args = origArgs
		os.Stderr = origStderr
	})

	var got server.Options
	runServer = func(ctx context.Context, opts server.Options) error {
		got = opts
		return nil
	}
	exit = func(code int) {
		t.Fatalf("unexpected exit %d", code)
	}
	tmp, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatalf("temp stderr: %v", err)
	}
	os.Stderr = tmp
	os.Args = []string{
		"fmpmcp",
		"--fmp-token", "demo-token",
		"--fmp-tool-sets", "search,quotes",
		"--dynamic-tool-discovery",
		"--config", "/tmp/config",
		"--transport", "http",
		"--port", "9000",
		"--log-level", "debug",
	}

	main()

	if got.AccessToken != "demo-token" {
		t.Fatalf("unexpected token: %#v", got)
	}
	if !reflect.DeepEqual(got.Toolsets, []string{"search", "quotes"}) {
		t.Fatalf("unexpected toolsets: %#v", got.Toolsets)
	}
	if got.ConfigPath != "/tmp/config" || !got.DynamicToolsets || got.LogLevel != "debug" {
		t.Fatalf("unexpected options: %#v", got)
	}
	if got.Transport != "http" || got.Port != 9000 {
		t.Fatalf("unexpected transport options: %#v", got)
	}
}

func TestMainDefaultsLeaveOptionsUnset(t *testing.T) {
	origRun := runServer
	origExit := exit
	origArgs := os.Args
	t.Cleanup(func() {
		runServer = origRun
		exit = origExit
		os.Args = origArgs
	})

	var got server.Options
	runServer = func(ctx context.Context, opts server.Options) error {
		got = opts
		return nil
	}
	exit = func(code int) {
		t.Fatalf("unexpected exit %d", code)
	}
	os.Args = []string{"fmpmcp"}

	main()

	if got.AccessToken != "" || got.Toolsets != nil || got.DynamicToolsets || got.Transport != "" || got.Port != 0 {
		t.Fatalf("expected zero options for unset flags: %#v", got)
	}
	if got.Version != version {
		t.Fatalf("expected version passed through")
	}
}

func TestMainErrorExit(t *testing.T) {
	origRun := runServer
	origExit := exit
	origArgs := os.Args
	origStderr := os.Stderr
	t.Cleanup(func() {
		runServer = origRun
		exit = origExit
		os.Args = origArgs
		os.Stderr = origStderr
	})

	runServer = func(ctx context.Context, opts server.Options) error {
		return fmt.Errorf("boom")
	}
	exitCode := 0
	exit = func(code int) {
		exitCode = code
	}
	tmp, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatalf("temp stderr: %v", err)
	}
	os.Stderr = tmp
	os.Args = []string{"fmpmcp"}

	main()

	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
}

func TestParseCSV(t *testing.T) {
	if parseCSV("") != nil {
		t.Fatalf("expected nil for empty input")
	}
	out := parseCSV(" search , quotes ,, ")
	if !reflect.DeepEqual(out, []string{"search", "quotes"}) {
		t.Fatalf("unexpected parse: %#v", out)
	}
}
