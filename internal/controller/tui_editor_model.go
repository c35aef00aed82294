package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/jsoned/internal/model"
)

const (
	defaultTreeHeight = 20
	maxPreviewLines   = 6
)

type editorMode int

const (
	modeBrowse editorMode = iota
	modePrompt
	modeConfirm
	modeJump
)

// promptStep is one question of a prompt.
type promptStep struct {
	name        string
	label       string
	placeholder string
	initial     string
}

// prompt collects the answers of a multi-step question.
type prompt struct {
	action  promptAction
	target  string
	steps   []promptStep
	step    int
	answers map[string]string
}

func (p *prompt) current() promptStep {
	return p.steps[p.step]
}

// editorModel is the interactive tree editor.
type editorModel struct {
	session       Session
	keys          keyMap
	help          help.Model
	input         textinput.Model
	jump          jumpModel
	collapsed     map[string]bool
	rows          []treeRow
	cursor        int
	offset        int
	width         int
	height        int
	mode          editorMode
	prompt        *prompt
	confirm       confirmAction
	confirmPath   string
	applyTemplate bool
	status        string
	statusErr     bool
	quitting      bool
}

func newEditorModel(session Session, applyTemplate bool) editorModel {
	input := textinput.New()
	input.CharLimit = 0

	em := editorModel{
		session:       session,
		keys:          defaultKeyMap(),
		help:          help.New(),
		input:         input,
		collapsed:     make(map[string]bool),
		applyTemplate: applyTemplate,
		status:        "Ready",
	}
	em.refresh()

	if len(em.rows) == 0 {
		em.status = "Empty document, press a to add a key"
	}

	return em
}

func (em editorModel) Init() tea.Cmd {
	return nil
}

func (em editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height
		em.help.Width = msg.Width

		if em.mode == modeJump {
			em.jump.setSize(msg.Width, msg.Height)
		}

		em.ensureVisible()

		return em, nil

	case statusMsg:
		em.setStatus(msg.text, msg.err)
		return em, nil

	case tickMsg:
		if em.mode != modeJump {
			return em, nil
		}

		var cmd tea.Cmd
		em.jump, cmd = em.jump.tick()

		return em, cmd

	case tea.KeyMsg:
		switch em.mode {
		case modePrompt:
			return em.handlePromptKey(msg)
		case modeConfirm:
			return em.handleConfirmKey(msg)
		case modeJump:
			return em.handleJumpKey(msg)
		default:
			return em.handleBrowseKey(msg)
		}
	}

	if em.mode == modePrompt {
		var cmd tea.Cmd
		em.input, cmd = em.input.Update(msg)

		return em, cmd
	}

	return em, nil
}

//nolint:cyclop // One case per key binding.
func (em editorModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, em.keys.Quit):
		if em.session.Dirty() {
			em.mode = modeConfirm
			em.confirm = confirmQuit

			return em, nil
		}

		em.quitting = true

		return em, tea.Quit

	case key.Matches(msg, em.keys.Up):
		em.moveCursor(-1)
	case key.Matches(msg, em.keys.Down):
		em.moveCursor(1)
	case key.Matches(msg, em.keys.Top):
		em.moveCursor(-len(em.rows))
	case key.Matches(msg, em.keys.Bottom):
		em.moveCursor(len(em.rows))

	case key.Matches(msg, em.keys.Toggle):
		if row, ok := em.currentRow(); ok && row.hasChildren() {
			em.setCollapsed(row.path, row.expanded)
		}
	case key.Matches(msg, em.keys.Expand):
		if row, ok := em.currentRow(); ok && row.hasChildren() {
			em.setCollapsed(row.path, false)
		}
	case key.Matches(msg, em.keys.Collapse):
		em.collapseOrParent()
	case key.Matches(msg, em.keys.ExpandAll):
		em.collapsed = make(map[string]bool)
		em.refresh()
		em.setStatus("Expanded all nodes", nil)
	case key.Matches(msg, em.keys.CollapseAll):
		for _, p := range containerPaths(em.session.Document()) {
			em.collapsed[p] = true
		}

		em.refresh()
		em.setStatus("Collapsed all nodes", nil)

	case key.Matches(msg, em.keys.Add):
		return em.startAdd()
	case key.Matches(msg, em.keys.Edit):
		return em.startEdit()
	case key.Matches(msg, em.keys.Delete):
		if row, ok := em.currentRow(); ok && row.path != "" {
			em.mode = modeConfirm
			em.confirm = confirmDelete
			em.confirmPath = row.path
		} else {
			em.setStatus("Nothing selected to delete", errNothingSelected)
		}
	case key.Matches(msg, em.keys.Template):
		return em.startPrompt(promptAddTemplate, "", promptStep{
			name: "field", label: "Template field", placeholder: "e.g. id, name",
		})
	case key.Matches(msg, em.keys.Untemplate):
		return em.startPrompt(promptRemoveTemplate, "", promptStep{
			name: "field", label: "Remove template field",
			placeholder: strings.Join(em.session.TemplateFields(), ", "),
		})
	case key.Matches(msg, em.keys.UseTemplate):
		em.applyTemplate = !em.applyTemplate
		em.setStatus(fmt.Sprintf("Apply template to new objects: %s", onOff(em.applyTemplate)), nil)
	case key.Matches(msg, em.keys.Jump):
		em.mode = modeJump
		em.jump = newJumpModel(flattenTree(em.session.Document(), nil), em.width, em.height)

		return em, em.jump.init()
	case key.Matches(msg, em.keys.Save):
		return em.save()
	case key.Matches(msg, em.keys.SaveAs):
		return em.startPrompt(promptSaveAs, "", promptStep{
			name: "path", label: "Save as", initial: saveAsDefault(em.session.File()),
		})
	}

	return em, nil
}

func (em editorModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		em.mode = modeBrowse

		if em.confirm == confirmQuit {
			em.quitting = true
			return em, tea.Quit
		}

		path := em.confirmPath
		if err := em.session.Delete(path); err != nil {
			em.setStatus("Failed to delete: "+path, err)
			return em, nil
		}

		delete(em.collapsed, path)
		em.refresh()
		em.setStatus("Deleted: "+path, nil)
	case "n", "esc", "ctrl+c":
		em.mode = modeBrowse
		em.setStatus("Cancelled", nil)
	}

	return em, nil
}

func (em editorModel) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !em.jump.filtering() {
		switch msg.String() {
		case "esc", "q":
			em.mode = modeBrowse
			return em, nil
		case "enter":
			em.mode = modeBrowse
			if path, ok := em.jump.selected(); ok {
				em.revealPath(path)
				em.setStatus("Jumped to "+path, nil)
			}

			return em, nil
		case "ctrl+c":
			em.mode = modeBrowse
			return em, nil
		}
	}

	var cmd tea.Cmd
	em.jump, cmd = em.jump.update(msg)

	return em, cmd
}

func (em editorModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		em.mode = modeBrowse
		em.prompt = nil
		em.input.Blur()
		em.setStatus("Cancelled", nil)

		return em, nil
	case tea.KeyEnter:
		return em.advancePrompt()
	case tea.KeyTab:
		if em.prompt.current().name == "type" {
			em.input.SetValue(string(nextInputType(em.input.Value())))
			em.input.CursorEnd()

			return em, nil
		}
	default:
	}

	var cmd tea.Cmd
	em.input, cmd = em.input.Update(msg)

	return em, cmd
}

func (em editorModel) startAdd() (tea.Model, tea.Cmd) {
	parent := ""
	if row, ok := em.currentRow(); ok {
		parent = row.parent
		if row.value.IsContainer() {
			parent = row.path
		}
	}

	keyStep := promptStep{name: "key", label: "New key name", placeholder: "e.g. name"}
	if next, ok := em.session.NextIndex(parent); ok {
		keyStep.label = "Array index"
		keyStep.initial = strconv.Itoa(next)
		keyStep.placeholder = fmt.Sprintf("next index: %d", next)
	}

	return em.startPrompt(promptAdd, parent,
		keyStep,
		promptStep{name: "type", label: "Type", initial: string(m.InputString), placeholder: typeHint()},
		promptStep{name: "value", label: "Value", placeholder: "empty string creates an object"},
	)
}

func (em editorModel) startEdit() (tea.Model, tea.Cmd) {
	row, ok := em.currentRow()
	if !ok || row.path == "" {
		em.setStatus("Nothing selected to edit", errNothingSelected)
		return em, nil
	}

	typ := m.InputString
	text := ""

	if !row.value.IsContainer() {
		typ = m.InputType(row.value.Kind().String())
		text = editText(row.value)
	}

	return em.startPrompt(promptEdit, row.path,
		promptStep{name: "type", label: "Type", initial: string(typ), placeholder: typeHint()},
		promptStep{name: "value", label: "Value", initial: text, placeholder: "enter value"},
	)
}

func (em editorModel) startPrompt(action promptAction, target string, steps ...promptStep) (tea.Model, tea.Cmd) {
	em.mode = modePrompt
	em.prompt = &prompt{
		action:  action,
		target:  target,
		steps:   steps,
		answers: make(map[string]string),
	}

	return em, em.showStep()
}

func (em *editorModel) showStep() tea.Cmd {
	step := em.prompt.current()
	em.input.Prompt = step.label + ": "
	em.input.Placeholder = step.placeholder
	em.input.SetValue(step.initial)
	em.input.CursorEnd()

	return em.input.Focus()
}

func (em editorModel) advancePrompt() (tea.Model, tea.Cmd) {
	p := em.prompt
	step := p.current()
	answer := strings.TrimSpace(em.input.Value())

	if step.name == "value" {
		answer = em.input.Value()
	}

	if step.name == "type" {
		typ, err := m.ParseInputType(answer)
		if err != nil {
			em.setStatus("Unknown type, use "+typeHint(), err)
			return em, nil
		}

		answer = string(typ)
	}

	p.answers[step.name] = answer

	for p.step++; p.step < len(p.steps); p.step++ {
		if !em.skipStep(p.steps[p.step]) {
			return em, em.showStep()
		}
	}

	em.mode = modeBrowse
	em.prompt = nil
	em.input.Blur()

	return em.commitPrompt(p)
}

func (em editorModel) skipStep(step promptStep) bool {
	if step.name != "value" {
		return false
	}

	return !m.InputType(em.prompt.answers["type"]).TakesText()
}

func (em editorModel) commitPrompt(p *prompt) (tea.Model, tea.Cmd) {
	switch p.action {
	case promptAdd:
		return em.commitAdd(p)
	case promptEdit:
		typ := m.InputType(p.answers["type"])
		if err := em.session.Update(p.target, typ, p.answers["value"]); err != nil {
			em.setStatus("Failed to update "+p.target, err)
			return em, nil
		}

		em.refresh()
		em.setStatus("Updated "+p.target, nil)
	case promptAddTemplate:
		if em.session.AddTemplateField(p.answers["field"]) {
			em.setStatus("Added template field "+p.answers["field"], nil)
		} else {
			em.setStatus("Template field not added", errDuplicateField)
		}
	case promptRemoveTemplate:
		if em.session.RemoveTemplateField(p.answers["field"]) {
			em.setStatus("Removed template field "+p.answers["field"], nil)
		} else {
			em.setStatus("No template field "+strconv.Quote(p.answers["field"]), errUnknownField)
		}
	case promptSaveAs:
		path := p.answers["path"]
		if err := em.session.SaveAs(m.FilePath(path)); err != nil {
			em.setStatus("Error saving file", err)
			return em, nil
		}

		em.setStatus("Saved: "+em.session.File().Name, nil)
	}

	return em, nil
}

func (em editorModel) commitAdd(p *prompt) (tea.Model, tea.Cmd) {
	fullPath, err := em.session.Create(m.CreateArgs{
		Parent:        p.target,
		Key:           p.answers["key"],
		Type:          m.InputType(p.answers["type"]),
		Text:          p.answers["value"],
		ApplyTemplate: em.applyTemplate,
	})
	if err != nil {
		em.setStatus("Failed to create "+p.answers["key"], err)
		return em, nil
	}

	delete(em.collapsed, p.target)

	// Stay on an array parent so more elements can be added in a row.
	target := fullPath
	if parent, ok := em.session.Get(p.target); ok && parent.Kind() == m.KindArray && p.target != "" {
		target = p.target
	}

	em.revealPath(target)
	em.setStatus("Created "+strconv.Quote(p.answers["key"]), nil)

	return em, nil
}

func (em editorModel) save() (tea.Model, tea.Cmd) {
	if em.session.File().Path == "" {
		return em.startPrompt(promptSaveAs, "", promptStep{
			name: "path", label: "Save as", initial: saveAsDefault(em.session.File()),
		})
	}

	if err := em.session.Save(); err != nil {
		em.setStatus("Error saving file", err)
		return em, nil
	}

	em.setStatus("Saved: "+em.session.File().Name, nil)

	return em, nil
}

func (em *editorModel) refresh() {
	selected := ""
	if row, ok := em.currentRow(); ok {
		selected = row.path
	}

	em.rows = flattenTree(em.session.Document(), em.collapsed)

	if selected != "" {
		if i := em.indexOf(selected); i >= 0 {
			em.cursor = i
		}
	}

	em.clampCursor()
}

func (em *editorModel) indexOf(path string) int {
	for i, row := range em.rows {
		if row.path == path {
			return i
		}
	}

	return -1
}

// revealPath unfolds every ancestor of path and moves the cursor onto it.
func (em *editorModel) revealPath(path string) {
	all := flattenTree(em.session.Document(), nil)
	parents := make(map[string]string, len(all))

	for _, row := range all {
		parents[row.path] = row.parent
	}

	for p, ok := parents[path]; ok && p != ""; p, ok = parents[p] {
		delete(em.collapsed, p)
	}

	em.rows = flattenTree(em.session.Document(), em.collapsed)
	if i := em.indexOf(path); i >= 0 {
		em.cursor = i
	}

	em.clampCursor()
}

func (em *editorModel) setCollapsed(path string, collapsed bool) {
	if collapsed {
		em.collapsed[path] = true
	} else {
		delete(em.collapsed, path)
	}

	em.refresh()
}

func (em *editorModel) collapseOrParent() {
	row, ok := em.currentRow()
	if !ok {
		return
	}

	if row.hasChildren() && row.expanded {
		em.setCollapsed(row.path, true)
		return
	}

	if i := em.indexOf(row.parent); i >= 0 {
		em.cursor = i
		em.clampCursor()
	}
}

func (em *editorModel) moveCursor(delta int) {
	em.cursor += delta
	em.clampCursor()
}

func (em *editorModel) clampCursor() {
	if em.cursor >= len(em.rows) {
		em.cursor = len(em.rows) - 1
	}

	if em.cursor < 0 {
		em.cursor = 0
	}

	if row, ok := em.currentRow(); ok {
		em.session.Select(row.path)
	} else {
		em.session.Select("")
	}

	em.ensureVisible()
}

func (em *editorModel) ensureVisible() {
	height := em.treeHeight()

	if em.cursor < em.offset {
		em.offset = em.cursor
	}

	if em.cursor >= em.offset+height {
		em.offset = em.cursor - height + 1
	}

	if em.offset < 0 {
		em.offset = 0
	}
}

func (em editorModel) currentRow() (treeRow, bool) {
	if em.cursor < 0 || em.cursor >= len(em.rows) {
		return treeRow{}, false
	}

	return em.rows[em.cursor], true
}

func (em *editorModel) setStatus(text string, err error) {
	em.status = text
	em.statusErr = err != nil

	if err != nil {
		em.status = fmt.Sprintf("%s: %v", text, err)
	}
}

func (em editorModel) previewLines() []string {
	row, ok := em.currentRow()
	if !ok {
		return []string{"No key selected"}
	}

	lines := strings.Split(em.session.Preview(row.path), "\n")
	if len(lines) > maxPreviewLines {
		lines = append(lines[:maxPreviewLines-1], fmt.Sprintf("… %d more lines", len(lines)-maxPreviewLines+1))
	}

	return lines
}

func (em editorModel) treeHeight() int {
	if em.height <= 0 {
		return defaultTreeHeight
	}

	// Title, preview border, templates, status or prompt, help.
	reserved := len(em.previewLines()) + 6

	height := em.height - reserved
	if height < 3 {
		height = 3
	}

	return height
}

func (em editorModel) View() string {
	if em.quitting {
		return ""
	}

	if em.mode == modeJump {
		return lipgloss.JoinVertical(lipgloss.Left, em.renderTitle(), em.jump.view())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		em.renderTitle(),
		em.renderTree(),
		em.renderPreview(),
		em.renderTemplates(),
		em.renderStatusLine(),
		helpStyle.Render(em.help.ShortHelpView(em.keys.shortHelp())),
	)
}

func (em editorModel) renderTitle() string {
	file := em.session.File()

	title := titleStyle.Render("jsoned") + " " + fileStyle.Render(file.Name)
	if em.session.Dirty() {
		title += " " + dirtyStyle.Render("●")
	}

	return title
}

func (em editorModel) renderTree() string {
	if len(em.rows) == 0 {
		return emptyStyle.Render("Empty JSON " + em.session.Document().Kind().String() + "\nUse a to add keys and values")
	}

	height := em.treeHeight()
	end := em.offset + height

	if end > len(em.rows) {
		end = len(em.rows)
	}

	lines := make([]string, 0, height)
	for i := em.offset; i < end; i++ {
		lines = append(lines, em.renderRow(em.rows[i], i == em.cursor))
	}

	return strings.Join(lines, "\n")
}

func (em editorModel) renderRow(row treeRow, selected bool) string {
	toggle := "  "
	if row.hasChildren() {
		toggle = "▼ "
		if !row.expanded {
			toggle = "▶ "
		}
	}

	indent := strings.Repeat("  ", row.depth)
	typ := "[" + row.value.Kind().String() + "]"
	value := ": " + formatScalar(row.value)

	if selected {
		plain := indent + toggle + row.label + " " + typ + value
		if em.width > 0 {
			plain = truncateToWidth(plain, em.width)
		}

		return selectedStyle.Render(plain)
	}

	line := indent + toggleStyle.Render(toggle) + keyStyle.Render(row.label) + " " +
		typeStyle.Render(typ) + valueStyle(row.value.Kind()).Render(value)

	return line
}

func (em editorModel) renderPreview() string {
	header := "Path: (root)"
	if row, ok := em.currentRow(); ok && row.path != "" {
		header = "Path: " + row.path
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		typeStyle.Render(header),
		strings.Join(em.previewLines(), "\n"),
	)

	style := previewStyle
	if em.width > 4 {
		style = style.Width(em.width - 2)
	}

	return style.Render(body)
}

func (em editorModel) renderTemplates() string {
	fields := em.session.TemplateFields()

	list := "none"
	if len(fields) > 0 {
		list = strings.Join(fields, ", ")
	}

	return helpStyle.Render(fmt.Sprintf("Template fields: %s (apply: %s)", list, onOff(em.applyTemplate)))
}

func (em editorModel) renderStatusLine() string {
	switch em.mode {
	case modePrompt:
		return em.input.View()
	case modeConfirm:
		if em.confirm == confirmQuit {
			return statusErrorStyle.Render("Unsaved changes, quit anyway? (y/n)")
		}

		return statusErrorStyle.Render(fmt.Sprintf("Are you sure you want to delete %q? (y/n)", em.confirmPath))
	default:
		if em.statusErr {
			return statusErrorStyle.Render(em.status)
		}

		return statusStyle.Render(em.status)
	}
}

func typeHint() string {
	names := make([]string, len(m.InputTypes))
	for i, t := range m.InputTypes {
		names[i] = string(t)
	}

	return strings.Join(names, "|") + " (tab cycles)"
}

// nextInputType returns the type after current in m.InputTypes, wrapping.
func nextInputType(current string) m.InputType {
	typ, err := m.ParseInputType(current)
	if err != nil {
		return m.InputTypes[0]
	}

	for i, t := range m.InputTypes {
		if t == typ {
			return m.InputTypes[(i+1)%len(m.InputTypes)]
		}
	}

	return m.InputTypes[0]
}

func saveAsDefault(file m.File) string {
	if file.Path != "" {
		return string(file.Path)
	}

	return file.Name
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}
