package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rediwo/tweenlog/config"
	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/graphql"
)

const (
	version = "0.1.0"
	usage   = `tweenlog - DOTween diagnostics logger

Usage:
  tweenlog <command> [flags]

Commands:
  emit        Send a message through the logger
  safe-mode   Report an error captured in safe mode
  check       Show the effective settings
  serve       Start the GraphQL inspector
  version     Show version information

Flags:
  --config      Path to a YAML or TOML config file
  --behaviour   Log behaviour override: default|verbose|errors-only
  --safe-mode   Safe mode policy override: none|normal|warning|error
  --debug       Enable debug mode
  --severity    Severity for emit: info|warning|error (default: info)
  --message     Message text for emit and safe-mode
  --site        Call site as member@line:path
  --help        Show help message

Examples:
  tweenlog emit --severity=warning --message="Null Tween"
  tweenlog safe-mode --safe-mode=error --debug --site="Start@12:Assets/Player.cs" --message="target destroyed"
  tweenlog check --config=tweenlog.yaml
  tweenlog serve --config=tweenlog.toml
`
)

func main() {
	var (
		configPath string
		behaviour  string
		safeMode   string
		debug      bool
		severity   string
		message    string
		site       string
		help       bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&behaviour, "behaviour", "", "Log behaviour override")
	flag.StringVar(&safeMode, "safe-mode", "", "Safe mode policy override")
	flag.BoolVar(&debug, "debug", false, "Enable debug mode")
	flag.StringVar(&severity, "severity", "info", "Severity for emit")
	flag.StringVar(&message, "message", "", "Message text")
	flag.StringVar(&site, "site", "", "Call site as member@line:path")
	flag.BoolVar(&help, "help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(0)
	}

	command := os.Args[1]

	if command == "version" {
		fmt.Printf("tweenlog v%s\n", version)
		os.Exit(0)
	}

	if command == "help" || command == "--help" || command == "-h" {
		flag.Usage()
		os.Exit(0)
	}

	flag.CommandLine.Parse(os.Args[2:])

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if behaviour != "" {
		cfg.LogBehaviour = behaviour
	}
	if safeMode != "" {
		cfg.SafeModeLogBehaviour = safeMode
	}
	if debug {
		cfg.DebugMode = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	switch command {
	case "emit", "safe-mode", "check", "serve":
	default:
		log.Fatalf("Unknown command: %s\n\nRun 'tweenlog --help' for usage", command)
	}

	if err := run(command, cfg, severity, message, site); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run builds the runtime and executes command. The runtime is closed before
// run returns, including on errors.
func run(command string, cfg *config.Config, severity, message, site string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := cfg.Build(ctx)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer rt.Close()

	switch command {
	case "emit":
		return runEmit(rt.Debugger, severity, message, site)
	case "safe-mode":
		return runSafeMode(rt.Debugger, message, site)
	case "check":
		runCheck(rt.Debugger)
		return nil
	case "serve":
		return runServe(ctx, rt, cfg)
	}
	return nil
}

func runEmit(d *diag.Debugger, severity, message, site string) error {
	sev, err := diag.ParseSeverity(severity)
	if err != nil {
		return err
	}
	cs, err := parseSite(site)
	if err != nil {
		return err
	}
	if !d.LogAt(sev, message, cs) {
		fmt.Fprintln(os.Stderr, "message dropped by the hook")
	}
	return nil
}

func runSafeMode(d *diag.Debugger, message, site string) error {
	cs, err := parseSite(site)
	if err != nil {
		return err
	}
	if !d.ShouldLogSafeModeCapturedError() {
		fmt.Fprintln(os.Stderr, "safe mode captured errors are not logged with the current settings")
	}
	d.LogSafeModeCapturedError(message, cs)
	return nil
}

func runCheck(d *diag.Debugger) {
	cfg := d.Config()
	fmt.Printf("log behaviour:            %s\n", cfg.LogBehaviour)
	fmt.Printf("log priority:             %d\n", d.LogPriority())
	fmt.Printf("safe mode log behaviour:  %s\n", cfg.SafeModeLogBehaviour)
	fmt.Printf("debug mode:               %t\n", cfg.DebugMode)
	fmt.Printf("hook installed:           %t\n", cfg.OnWillLog != nil)
	fmt.Printf("log safe mode errors:     %t\n", d.ShouldLogSafeModeCapturedError())
}

func runServe(ctx context.Context, rt *config.Runtime, cfg *config.Config) error {
	src := graphql.Source{Debugger: rt.Debugger, Recorder: rt.Recorder}
	if rt.Store != nil {
		src.Store = rt.Store
	}

	server, err := graphql.NewServer(src, graphql.ServerConfig{
		Addr:       cfg.Server.Addr,
		CORS:       cfg.Server.CORS,
		Playground: cfg.Server.Playground,
	}, rt.Logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// parseSite parses "member@line:path". An empty string means no call site.
func parseSite(s string) (*diag.CallSite, error) {
	if s == "" {
		return nil, nil
	}
	member, rest, ok := strings.Cut(s, "@")
	if !ok {
		return nil, fmt.Errorf("invalid --site %q, want member@line:path", s)
	}
	lineStr, path, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, fmt.Errorf("invalid --site %q, want member@line:path", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return nil, fmt.Errorf("invalid line in --site: %w", err)
	}
	return &diag.CallSite{Member: member, Line: line, Path: path, IntID: diag.NoIntID}, nil
}
