// Package main is the entry point for rigedit, which replays action
// strings and Lua action scripts against a recording model.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dshills/rigedit/internal/app"
	"github.com/dshills/rigedit/internal/config"
	"github.com/dshills/rigedit/internal/dispatcher"
	"github.com/dshills/rigedit/internal/input/keymap"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type cliOptions struct {
	configPath     string
	logLevel       string
	catalogFormat  string
	validateKeymap string
	strict         bool
	files          []string
}

func main() {
	os.Exit(run())
}

func run() int {
	cli := parseFlags()

	if cli.catalogFormat != "" {
		return exportCatalog(cli.catalogFormat)
	}
	if cli.validateKeymap != "" {
		return validateKeymap(cli.validateKeymap)
	}

	opts, err := config.Load(cli.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if cli.logLevel != "" {
		opts.LogLevel = cli.logLevel
	}

	application, err := app.New(opts, app.WithStrictScripts(cli.strict))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(cli.files) == 0 {
		cli.files = []string{"-"}
	}
	for _, name := range cli.files {
		if err := runFile(ctx, application, name); err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
			return 1
		}
	}

	if cli.strict && application.Unhandled() > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d action(s) not handled\n", application.Unhandled())
		return 2
	}
	return 0
}

// runFile replays stdin ("-"), a Lua script (".lua") or an action file.
func runFile(ctx context.Context, a *app.App, name string) error {
	if name == "-" {
		return a.Run(ctx, os.Stdin)
	}
	if strings.EqualFold(filepath.Ext(name), ".lua") {
		return a.RunScript(ctx, name)
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return a.Run(ctx, f)
}

func exportCatalog(format string) int {
	d, err := dispatcher.NewStandard(dispatcher.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := writeCatalog(os.Stdout, d.Catalog(), format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func validateKeymap(path string) int {
	if err := checkKeymap(os.Stdout, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// checkKeymap loads a key-map file and binds it against the standard
// catalog.
func checkKeymap(w io.Writer, path string) error {
	f, err := keymap.LoadFile(path)
	if err != nil {
		return err
	}
	d, err := dispatcher.NewStandard(dispatcher.DefaultConfig())
	if err != nil {
		return err
	}
	km := keymap.New()
	d.Catalog().RegisterAll(km)
	if err := km.Apply(f); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %d binding(s) ok\n", path, km.Len())
	return err
}

func parseFlags() cliOptions {
	var cli cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&cli.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&cli.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&cli.catalogFormat, "catalog", "", "Print the action catalog (json or text) and exit")
	flag.StringVar(&cli.validateKeymap, "check-keymap", "", "Validate a key-map file and exit")
	flag.BoolVar(&cli.strict, "strict", false, "Fail when any action is not handled")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rigedit - action dispatcher for a 3D model editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: rigedit [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rigedit < actions.txt           Replay actions from stdin\n")
		fmt.Fprintf(os.Stderr, "  rigedit walk.lua                Run a Lua action script\n")
		fmt.Fprintf(os.Stderr, "  rigedit -catalog json           Print every action string\n")
		fmt.Fprintf(os.Stderr, "  rigedit -check-keymap keys.yaml Validate key bindings\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("rigedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch cli.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", cli.logLevel)
		os.Exit(1)
	}

	cli.files = flag.Args()
	return cli
}
