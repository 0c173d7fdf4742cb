package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// ErrNoInput is returned by Confirm when input is closed before an answer.
var ErrNoInput = errors.New("no confirmation input")

// Notifier prompts on in and reports outcomes on out. AssumeYes skips the
// prompt and confirms every request.
type Notifier struct {
	AssumeYes bool

	mu     sync.Mutex
	in     *bufio.Reader
	out    io.Writer
	styles styles
	// pending holds a read abandoned by a cancelled Confirm.
	pending chan readResult
}

type styles struct {
	prompt       lipgloss.Style
	success      lipgloss.Style
	failure      lipgloss.Style
	unauthorized lipgloss.Style
}

func New(in io.Reader, out io.Writer, assumeYes bool) *Notifier {
	return &Notifier{
		AssumeYes: assumeYes,
		in:        bufio.NewReader(in),
		out:       out,
		styles: styles{
			prompt:       lipgloss.NewStyle().Bold(true),
			success:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			unauthorized: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

func (n *Notifier) Confirm(ctx context.Context, message string) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, _ = fmt.Fprintf(n.out, "%s [y/N]: ", n.styles.prompt.Render(sanitize(message)))
	if n.AssumeYes {
		_, _ = fmt.Fprintln(n.out, "y")
		return true, nil
	}

	if n.pending == nil {
		answer := make(chan readResult, 1)
		go func() {
			line, err := n.in.ReadString('\n')
			answer <- readResult{line: line, err: err}
		}()
		n.pending = answer
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-n.pending:
		n.pending = nil
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return false, fmt.Errorf("read confirmation: %w", res.err)
		}
		if res.err != nil && strings.TrimSpace(res.line) == "" {
			return false, ErrNoInput
		}
		switch strings.ToLower(strings.TrimSpace(res.line)) {
		case "y", "yes", "s", "si", "sí":
			return true, nil
		default:
			return false, nil
		}
	}
}

type readResult struct {
	line string
	err  error
}

func (n *Notifier) NotifySuccess(message string) {
	n.write(n.styles.success, "✓ "+message)
}

func (n *Notifier) NotifyError(message string) {
	n.write(n.styles.failure, "✗ "+message)
}

func (n *Notifier) NotifyUnauthorized(message string) {
	n.write(n.styles.unauthorized, message)
}

func (n *Notifier) write(style lipgloss.Style, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.out, style.Render(sanitize(message)))
}

func sanitize(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
