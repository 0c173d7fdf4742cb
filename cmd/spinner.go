package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type loadDoneMsg struct {
	err error
}

// loadingModel animates a label with the time spent so far while a load runs.
type loadingModel struct {
	spinner spinner.Model
	label   string
	started time.Time
	load    tea.Cmd
	err     error
	done    bool
}

func newLoadingModel(label string, started time.Time, load tea.Cmd) loadingModel {
	return loadingModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		label:   label,
		started: started,
		load:    load,
	}
}

func (m loadingModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m loadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loadingModel) View() string {
	if m.done {
		return ""
	}
	elapsed := time.Since(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, faint.Render(elapsed.String()))
}

var faint = lipgloss.NewStyle().Faint(true)

// runWithSpinner runs task while showing label on output. The animation only
// runs on a terminal; anywhere else the label is written once as a plain
// line. Cancelling ctx stops the wait and returns ctx's error.
func runWithSpinner(ctx context.Context, output io.Writer, label string, task func(context.Context) error) error {
	if !isTerminal(output) {
		if label != "" {
			fmt.Fprintln(output, label)
		}
		return task(ctx)
	}

	load := func() tea.Msg {
		return loadDoneMsg{err: task(ctx)}
	}
	p := tea.NewProgram(
		newLoadingModel(label, time.Now(), load),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctxErr
		}
		return fmt.Errorf("loading indicator: %w", err)
	}

	model, ok := final.(loadingModel)
	if !ok {
		return fmt.Errorf("unexpected loading model %T", final)
	}
	return model.err
}

func isTerminal(output io.Writer) bool {
	file, ok := output.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
