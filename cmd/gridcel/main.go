package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the top-level command line interface for gridcel.
type CLI struct {
	Config   string `help:"Path to a YAML defaults file." type:"path"`
	LogLevel string `help:"Minimum log level." enum:"debug,info,warn,error" default:"warn"`

	Run  RunCmd  `cmd:"" default:"withargs" help:"Evaluate a delimited file and write the results."`
	View ViewCmd `cmd:"" help:"Evaluate a delimited file and browse the result interactively."`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var cli CLI

	options := []kong.Option{
		kong.Name("gridcel"),
		kong.Description("A formula engine for delimited spreadsheet files."),
		kong.UsageOnError(),
	}

	// Resolve the config file before parsing so its values can serve as
	// flag defaults. The flag itself is re-parsed normally afterwards.
	if path := scanConfigPath(args); path != "" {
		resolver, err := yamlResolver(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		options = append(options, kong.Resolvers(resolver))
	}

	parser, err := kong.New(&cli, options...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return 1
	}

	initLogging(cli.LogLevel)

	if err := ktx.Run(&cli); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func initLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
