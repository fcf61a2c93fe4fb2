package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/anton-mel/macro-extract/internal/model"
)

const maxRecentReactions = 12

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// TUI implements UI using Bubble Tea for the watch view and styled output
// for one-shot commands.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program

	done      chan struct{}
	closeOnce sync.Once
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin, done: make(chan struct{})}
}

// Start launches the interactive watch view in watch mode. In one-shot mode
// it does nothing.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := startConfig(options)
	if config.mode != ModeWatch {
		return nil
	}

	model := newWatchModel(config.root)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(t.input))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	go func() {
		defer t.closeDone()

		if _, err := program.Run(); err != nil {
			slog.Error("Failed to run watch view", "error", err)
		}
	}()

	return nil
}

// Close stops the watch view and waits for it to restore the terminal.
func (t *TUI) Close(_ context.Context) {
	program := t.currentProgram()
	if program == nil {
		t.closeDone()
		return
	}

	program.Quit()
	<-t.done
}

// Wait blocks until the user closes the watch view.
func (t *TUI) Wait(ctx context.Context) {
	if t.currentProgram() == nil {
		return
	}

	select {
	case <-ctx.Done():
	case <-t.done:
	}
}

// Done implements UI.
func (t *TUI) Done() <-chan struct{} {
	return t.done
}

// DisplayReaction adds a reaction to the watch view.
func (t *TUI) DisplayReaction(ctx context.Context, reaction m.Reaction) {
	if err := ctx.Err(); err != nil {
		return
	}

	if program := t.currentProgram(); program != nil {
		program.Send(reactionMsg{reaction: reaction})
		return
	}

	t.println(styledReaction(reaction))
}

// DisplayText prints content verbatim.
func (t *TUI) DisplayText(ctx context.Context, content []byte) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = t.output.Write(content)
}

// DisplayDiff prints a unified diff with added and removed lines coloured.
func (t *TUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		t.println(okStyle.Render("✓ skeleton is up to date"))
		return
	}

	for _, line := range strings.SplitAfter(diff, "\n") {
		text := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			t.println(titleStyle.Render(text))
		case strings.HasPrefix(line, "+"):
			t.println(addedStyle.Render(text))
		case strings.HasPrefix(line, "-"):
			t.println(removedStyle.Render(text))
		case text != "":
			t.println(text)
		}
	}
}

// DisplayVerification prints the verdict table with a coloured summary.
func (t *TUI) DisplayVerification(ctx context.Context, report m.VerificationReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(titleStyle.Render("Contracts of " + report.Source.Origin.String()))
	_, _ = fmt.Fprint(t.output, renderVerdictTable(report))

	for _, d := range report.Diagnostics {
		t.println(warnStyle.Render(d.String()))
	}

	summary := report.Summary()
	if summary.Failed() {
		t.println(failStyle.Render("✗ " + summaryLine(summary)))
		return
	}

	t.println(okStyle.Render("✓ " + summaryLine(summary)))
}

func (t *TUI) currentProgram() *tea.Program {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program
}

func (t *TUI) closeDone() {
	t.closeOnce.Do(func() {
		close(t.done)
	})
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}

func styledReaction(r m.Reaction) string {
	stamp := faintStyle.Render(r.Event.Time.Format(time.TimeOnly))
	line := fmt.Sprintf("%s %s %s", stamp, r.Action, r.Event.Path)

	switch {
	case r.Err != nil:
		return failStyle.Render("✗ "+line) + " " + faintStyle.Render(r.Err.Error())
	case r.Action == m.ActionVerify && r.Summary.Failed():
		return failStyle.Render("✗ "+line) + " " + summaryLine(r.Summary)
	case r.Action == m.ActionVerify:
		return okStyle.Render("✓ "+line) + " " + summaryLine(r.Summary)
	default:
		return "• " + line
	}
}

// reactionMsg delivers a reaction to the running watch view.
type reactionMsg struct {
	reaction m.Reaction
}

// watchModel is the Bubble Tea model of the watch view.
type watchModel struct {
	root      m.Path
	spinner   spinner.Model
	reactions []m.Reaction
	failures  int
	width     int
	quitting  bool
}

func newWatchModel(root m.Path) watchModel {
	return watchModel{
		root:    root,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
	}
}

func (wm watchModel) Init() tea.Cmd {
	return wm.spinner.Tick
}

func (wm watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wm.width = msg.Width

		return wm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			wm.quitting = true
			return wm, tea.Quit
		}

		return wm, nil

	case reactionMsg:
		return wm.record(msg.reaction), nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		wm.spinner, cmd = wm.spinner.Update(msg)

		return wm, cmd
	}

	return wm, nil
}

func (wm watchModel) record(r m.Reaction) watchModel {
	if r.Err != nil || r.Summary.Failed() {
		wm.failures++
	}

	reactions := append([]m.Reaction{}, wm.reactions...)
	reactions = append(reactions, r)

	if len(reactions) > maxRecentReactions {
		reactions = reactions[len(reactions)-maxRecentReactions:]
	}

	wm.reactions = reactions

	return wm
}

func (wm watchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("macro-extract") + "\n\n")

	if wm.quitting {
		b.WriteString("  stopped watching " + wm.root.String() + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s watching %s\n\n", wm.spinner.View(), wm.root)

	if len(wm.reactions) == 0 {
		b.WriteString(faintStyle.Render("  waiting for changes...") + "\n")
	}

	for _, r := range wm.reactions {
		line := styledReaction(r)
		if wm.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(wm.width - 2).Render(line)
		}

		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")

	if wm.failures > 0 {
		b.WriteString(failStyle.Render(fmt.Sprintf("  %d failing reaction(s)", wm.failures)) + "\n")
	}

	b.WriteString(faintStyle.Render("  q: quit") + "\n")

	return b.String()
}
