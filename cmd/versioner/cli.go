package main

import (
	"context"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"io"
	"log/slog"
)

// Global carries state shared by commands
type Global struct {
	Context context.Context
	Logger  *slog.Logger
	Out     io.Writer
}

// NewGlobal creates command state logging to errOut through a charm handler
func NewGlobal(ctx context.Context, out, errOut io.Writer, verbose bool) *Global {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(errOut, log.Options{
		Level:           level,
		Prefix:          "versioner",
		ReportTimestamp: true,
	})
	styles := log.DefaultStyles()
	styles.Keys["module"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	styles.Keys["version"] = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	handler.SetStyles(styles)
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return &Global{Context: ctx, Logger: logger, Out: out}
}

// CLI defines global flags and commands
type CLI struct {
	Config  string           `short:"c" help:"Versioning configuration file (YAML or TOML), local path or storage URL"`
	Verbose bool             `short:"v" help:"Enable debug logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Apply  ApplyCmd  `cmd:"" help:"Read every module of a tree and apply versioning rules"`
	Locate LocateCmd `cmd:"" help:"Print the descriptor location of a directory"`
}
