package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const typeColumnWidth = 9

// pathDelegate renders one path per line, scrolling the selected one when
// it does not fit.
type pathDelegate struct {
	offset int
}

func (d pathDelegate) Height() int  { return 1 }
func (d pathDelegate) Spacing() int { return 0 }
func (d pathDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d pathDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	entry, ok := item.(pathItem)
	if !ok {
		return
	}

	width := lm.Width() - typeColumnWidth - 2

	var pathStyle, kindStyle lipgloss.Style

	var displayPath string

	if index == lm.Index() {
		pathStyle = selectedStyle
		kindStyle = selectedStyle.Width(typeColumnWidth)
		displayPath = animateScroll(entry.path, width, d.offset)
	} else {
		pathStyle = keyStyle
		kindStyle = typeStyle.Width(typeColumnWidth)
		displayPath = truncateToWidth(entry.path, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", kindStyle.Render(entry.typ), pathStyle.Render(displayPath))
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling starts.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// jumpModel is the filterable list of every path in the document.
type jumpModel struct {
	paths        list.Model
	delegate     pathDelegate
	animOffset   int
	lastSelected int
}

func newJumpModel(rows []treeRow, width, height int) jumpModel {
	items := make([]list.Item, 0, len(rows))

	for _, row := range rows {
		if row.path == "" {
			continue
		}

		items = append(items, pathItem{path: row.path, typ: row.value.Kind().String()})
	}

	delegate := pathDelegate{}
	paths := list.New(items, delegate, 80, 20)
	paths.SetShowPagination(false)
	paths.SetShowFilter(true)
	paths.SetShowHelp(false)
	paths.SetShowTitle(false)
	paths.SetShowStatusBar(false)
	paths.FilterInput.Placeholder = "Filter by path…"
	paths.KeyMap.Quit.SetEnabled(false)
	paths.KeyMap.ForceQuit.SetEnabled(false)

	jm := jumpModel{
		paths:        paths,
		delegate:     delegate,
		lastSelected: 0,
	}
	jm.setSize(width, height)

	return jm
}

func (jm jumpModel) init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (jm *jumpModel) setSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	// Title, header and footer lines.
	listHeight := height - 4
	if listHeight < 5 {
		listHeight = 5
	}

	jm.paths.SetSize(width, listHeight)
}

func (jm jumpModel) tick() (jumpModel, tea.Cmd) {
	if jm.filtering() {
		return jm, nil
	}

	jm.animOffset++
	jm.delegate.offset = jm.animOffset
	jm.paths.SetDelegate(jm.delegate)

	return jm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (jm jumpModel) update(msg tea.Msg) (jumpModel, tea.Cmd) {
	var cmd tea.Cmd

	jm.paths, cmd = jm.paths.Update(msg)

	if jm.paths.Index() != jm.lastSelected {
		jm.lastSelected = jm.paths.Index()
		jm.animOffset = 0
		jm.delegate.offset = 0
		jm.paths.SetDelegate(jm.delegate)
	}

	return jm, cmd
}

func (jm jumpModel) filtering() bool {
	return jm.paths.FilterState() == list.Filtering
}

// selected returns the path under the cursor.
func (jm jumpModel) selected() (string, bool) {
	item, ok := jm.paths.SelectedItem().(pathItem)
	if !ok {
		return "", false
	}

	return item.path, true
}

func (jm jumpModel) view() string {
	if len(jm.paths.Items()) == 0 {
		return emptyStyle.Render("No paths to jump to, press esc")
	}

	header := typeStyle.Render(fmt.Sprintf("%-*s  %s", typeColumnWidth, "Type", "Path"))
	footer := helpStyle.Render("↑/k up • ↓/j down • / filter • enter jump • esc back")

	return lipgloss.JoinVertical(lipgloss.Left, header, jm.paths.View(), footer)
}
