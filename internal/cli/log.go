// Package cli implements the capfig command-line interface.
//
// This package provides commands for rendering the manuscript figures,
// running the disk packer on its own, locating the capacity phase
// transition, and managing the artifact cache. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw one or more figures as PNG, SVG or PDF
//   - pack: Run the disk packer and optionally export the packing as JSON
//   - crossing: Print the phase-transition population N_c
//   - list: Show the available figures
//   - cache: Manage the rendered artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress counts finished items of one kind and logs the total with the
// elapsed time. It is not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
	noun   string
	n      int
}

// newProgress starts timing a run over items called noun ("figure").
func newProgress(l *log.Logger, noun string) *progress {
	return &progress{logger: l, start: time.Now(), noun: noun}
}

// add records one finished item.
func (p *progress) add() { p.n++ }

// summary returns e.g. "Rendered 2 figures".
func (p *progress) summary(verb string) string {
	noun := p.noun
	if p.n != 1 {
		noun += "s"
	}
	return fmt.Sprintf("%s %d %s", verb, p.n, noun)
}

// done logs the summary and the elapsed time rounded to the millisecond,
// e.g. "Rendered 4 figures (1.234s)".
func (p *progress) done(verb string) {
	p.logger.Infof("%s (%s)", p.summary(verb), time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
