package controller

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/jsoned/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 0, 0, 1)
	fileStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dirtyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	typeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	toggleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true).Padding(1, 2)

	valueColors = map[m.Kind]lipgloss.Color{
		m.KindNull:   lipgloss.Color("8"),
		m.KindBool:   lipgloss.Color("5"),
		m.KindNumber: lipgloss.Color("11"),
		m.KindString: lipgloss.Color("2"),
		m.KindArray:  lipgloss.Color("4"),
		m.KindObject: lipgloss.Color("4"),
	}
)

func valueStyle(k m.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(valueColors[k])
}

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Toggle      key.Binding
	Expand      key.Binding
	Collapse    key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Add         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Template    key.Binding
	Untemplate  key.Binding
	UseTemplate key.Binding
	Jump        key.Binding
	Save        key.Binding
	SaveAs      key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Expand:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Collapse:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		ExpandAll:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "collapse all")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Template:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "template +")),
		Untemplate:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "template -")),
		UseTemplate: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "use template")),
		Jump:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Save:        key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		SaveAs:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "save as")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp lists the bindings shown in the footer.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Toggle, k.ExpandAll, k.CollapseAll,
		k.Add, k.Edit, k.Delete, k.Template, k.UseTemplate, k.Jump, k.Save, k.Quit,
	}
}
