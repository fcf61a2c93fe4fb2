// Package controller provides output adapters for displaying skeletons,
// verdicts and watch reactions.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/anton-mel/macro-extract/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeOneShot StartMode = iota
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
	root m.Path
}

// WithOneShotMode sets the UI to print results of a single command.
func WithOneShotMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeOneShot
	}
}

// WithWatchMode sets the UI to follow reactions of the watch loop on root.
func WithWatchMode(root m.Path) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
		c.root = root
	}
}

// Mode returns the configured start mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

func startConfig(options []StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for presenting results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	// Done is closed when the user closes the UI or Close is called.
	Done() <-chan struct{}
	DisplayReaction(ctx context.Context, reaction m.Reaction)
	DisplayText(ctx context.Context, content []byte)
	DisplayDiff(ctx context.Context, diff string)
	DisplayVerification(ctx context.Context, report m.VerificationReport)
}

// NewUI returns the interactive TUI when tty is set and the plain UI
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
