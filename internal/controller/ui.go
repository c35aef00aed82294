// Package controller provides the output adapters that render JSON documents
// and drive the interactive editor.
package controller

import (
	m "github.com/mouse-blink/jsoned/internal/model"
)

// Session is what the interactive editor needs from an editing session.
//
//nolint:interfacebloat // Mirrors the session API the editor drives.
type Session interface {
	Document() *m.Value
	File() m.File
	Dirty() bool
	Save() error
	SaveAs(path m.FilePath) error

	Get(pathText string) (*m.Value, bool)
	Preview(pathText string) string
	Create(args m.CreateArgs) (string, error)
	Update(pathText string, typ m.InputType, text string) error
	Delete(pathText string) error

	Select(pathText string)
	Selected() string
	NextIndex(pathText string) (int, bool)

	AddTemplateField(name string) bool
	RemoveTemplateField(name string) bool
	TemplateFields() []string
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	session       Session
	applyTemplate bool
}

// WithSession hands the editing session to the UI.
func WithSession(s Session) StartOption {
	return func(c *StartConfig) {
		c.session = s
	}
}

// WithApplyTemplate sets whether new objects get the template fields by default.
func WithApplyTemplate(apply bool) StartOption {
	return func(c *StartConfig) {
		c.applyTemplate = apply
	}
}

// NewStartConfig applies options to an empty StartConfig.
func NewStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// Session returns the session set by WithSession.
func (c StartConfig) Session() Session { return c.session }

// ApplyTemplate reports the value set by WithApplyTemplate.
func (c StartConfig) ApplyTemplate() bool { return c.applyTemplate }

// UI defines how documents are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start runs the interactive editor until the user quits.
	Start(options ...StartOption) error
	// DisplayTree shows the whole document.
	DisplayTree(file m.File, doc *m.Value) error
	// DisplayValue shows the value at path, or "undefined" when found is false.
	DisplayValue(path string, value *m.Value, found bool) error
	// DisplayStatus reports the outcome of an operation.
	DisplayStatus(message string, err error)
}
