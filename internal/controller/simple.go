package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mouse-blink/jsoned/internal/adapter"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the document once; plain output cannot host the interactive editor.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := NewStartConfig(options...)
	if cfg.session == nil {
		return ErrNoSession
	}

	return s.DisplayTree(cfg.session.File(), cfg.session.Document())
}

// DisplayTree prints every path of doc with its type and value as a table.
func (s *SimpleUI) DisplayTree(file m.File, doc *m.Value) error {
	rows := flattenTree(doc, nil)
	if len(rows) == 0 {
		s.printf("%s: empty %s\n", file.Name, doc.Kind())
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Type", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		path := row.path
		if path == "" {
			path = row.label
		}

		table.Append([]string{
			strings.Repeat("  ", row.depth) + path,
			row.value.Kind().String(),
			formatScalar(row.value),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("%d paths", len(rows)), "", ""})

	table.Render()
	s.printf("%s\n%s", file.Name, tableBuffer.String())

	return nil
}

// DisplayValue prints the value at path as JSON, or "undefined".
func (s *SimpleUI) DisplayValue(_ string, value *m.Value, found bool) error {
	if !found {
		s.printf("undefined\n")
		return nil
	}

	data, err := adapter.Encode(value, adapter.DefaultIndent)
	if err != nil {
		return err
	}

	s.printf("%s\n", data)

	return nil
}

// DisplayStatus prints message, in red to the error stream when err is set.
func (s *SimpleUI) DisplayStatus(message string, err error) {
	if err != nil {
		red := color.New(color.FgRed).SprintFunc()
		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s %s: %v\n", red("error:"), message, err)

		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	s.printf("%s %s\n", green("✓"), message)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
