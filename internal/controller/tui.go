package controller

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mouse-blink/jsoned/internal/adapter"
	m "github.com/mouse-blink/jsoned/internal/model"
	"golang.org/x/term"
)

// ErrNoSession is returned by Start when no session was given.
var ErrNoSession = errors.New("no editing session")

var (
	errNothingSelected = errors.New("nothing selected")
	errDuplicateField  = errors.New("empty or duplicate field name")
	errUnknownField    = errors.New("unknown field")
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start runs the interactive editor on the given session until the user quits.
func (t *TUI) Start(options ...StartOption) error {
	cfg := NewStartConfig(options...)
	if cfg.session == nil {
		return ErrNoSession
	}

	model := newEditorModel(cfg.session, cfg.applyTemplate)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
			model.help.Width = width
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	return nil
}

// DisplayTree prints the fully expanded tree once.
func (t *TUI) DisplayTree(file m.File, doc *m.Value) error {
	rows := flattenTree(doc, nil)

	_, _ = fmt.Fprintln(t.output, titleStyle.Render("jsoned")+" "+fileStyle.Render(file.Name))

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(t.output, emptyStyle.Render("Empty JSON "+doc.Kind().String()))
		return nil
	}

	view := editorModel{rows: rows, cursor: -1}
	for _, row := range rows {
		_, _ = fmt.Fprintln(t.output, view.renderRow(row, false))
	}

	return nil
}

// DisplayValue prints the value at path as highlighted JSON.
func (t *TUI) DisplayValue(path string, value *m.Value, found bool) error {
	if !found {
		_, _ = fmt.Fprintln(t.output, valueStyle(m.KindNull).Render("undefined"))
		return nil
	}

	data, err := adapter.Encode(value, adapter.DefaultIndent)
	if err != nil {
		return err
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		typeStyle.Render(fmt.Sprintf("%s [%s]", displayPath(path), value.Kind())),
		valueStyle(value.Kind()).Render(string(data)),
	)
	_, _ = fmt.Fprintln(t.output, body)

	return nil
}

// DisplayStatus prints a one-line status.
func (t *TUI) DisplayStatus(message string, err error) {
	if err != nil {
		_, _ = fmt.Fprintln(t.output, statusErrorStyle.Render(fmt.Sprintf("%s: %v", message, err)))
		return
	}

	_, _ = fmt.Fprintln(t.output, statusStyle.Render(message))
}

func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}

	return path
}
