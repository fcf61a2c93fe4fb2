package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/anton-mel/macro-extract/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command

	done      chan struct{}
	closeOnce sync.Once
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, done: make(chan struct{})}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := startConfig(options)
	if config.mode == ModeWatch {
		s.printf("Watching %s (ctrl+c to stop)\n", config.root)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// Done implements UI.
func (s *SimpleUI) Done() <-chan struct{} {
	return s.done
}

// DisplayReaction prints one line per reaction.
func (s *SimpleUI) DisplayReaction(ctx context.Context, reaction m.Reaction) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", reactionLine(reaction))
}

// DisplayText prints content verbatim.
func (s *SimpleUI) DisplayText(ctx context.Context, content []byte) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = s.cmd.OutOrStdout().Write(content)
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("skeleton is up to date\n")
		return
	}

	s.printf("%s", diff)
}

// DisplayVerification prints the verdict table followed by diagnostics.
func (s *SimpleUI) DisplayVerification(ctx context.Context, report m.VerificationReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderVerdictTable(report))

	for _, d := range report.Diagnostics {
		s.printf("%s\n", d)
	}

	s.printf("%s\n", summaryLine(report.Summary()))
}

func renderVerdictTable(report m.VerificationReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Function", "Clause", "Outcome", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, v := range report.Verdicts {
		table.Append([]string{v.Function, v.Clause.String(), v.Outcome.String(), v.Reason})
	}

	summary := report.Summary()
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(report.Verdicts)),
		"",
		fmt.Sprintf("%d failed", summary.Unsatisfied),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func summaryLine(s m.Summary) string {
	return fmt.Sprintf("satisfied: %d, unsatisfied: %d, inconclusive: %d, missing: %d, skipped: %d, malformed: %d",
		s.Satisfied, s.Unsatisfied, s.Inconclusive, s.Missing, s.Skipped, s.Malformed)
}

func reactionLine(r m.Reaction) string {
	line := fmt.Sprintf("[%s] %s %s", r.Event.Kind, r.Action, r.Event.Path)

	switch {
	case r.Err != nil:
		return line + " -> error: " + r.Err.Error()
	case r.Action == m.ActionVerify:
		return line + " -> " + summaryLine(r.Summary)
	default:
		return line
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
