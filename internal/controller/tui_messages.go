package controller

// Message types.
type statusMsg struct {
	text string
	err  error
}

// promptAction identifies what a prompt collects input for.
type promptAction int

const (
	promptAdd promptAction = iota
	promptEdit
	promptAddTemplate
	promptRemoveTemplate
	promptSaveAs
)

// confirmAction identifies what a yes/no question guards.
type confirmAction int

const (
	confirmDelete confirmAction = iota
	confirmQuit
)

// List item types.
type pathItem struct {
	path string
	typ  string
}

func (p pathItem) FilterValue() string {
	return p.path
}
