package ui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ err error }

// spinnerModel shows a spinner until the work reports back. Ctrl-C cancels
// the work's context and leaves immediately.
type spinnerModel struct {
	spin   spinner.Model
	label  string
	cancel context.CancelFunc
	done   bool
}

func newSpinnerModel(label string, cancel context.CancelFunc) spinnerModel {
	return spinnerModel{
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SpinnerStyle)),
		label:  label,
		cancel: cancel,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancel()
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return "  " + m.spin.View() + " " + SpinnerLabelStyle.Render(m.label+"...")
}

// RunWithSpinner runs fn while a spinner labelled label is shown on out.
// On a non-terminal out fn runs without any output. The returned error is
// fn's.
func RunWithSpinner(ctx context.Context, out io.Writer, label string, fn func(ctx context.Context) error) error {
	if !IsTerminal(out) {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSpinnerModel(label, cancel), tea.WithOutput(out), tea.WithContext(ctx))

	result := make(chan error, 1)
	go func() {
		err := fn(ctx)
		result <- err
		p.Send(doneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		// The program failed or ctx ended; the work still has to unwind.
		cancel()
	}
	return <-result
}
