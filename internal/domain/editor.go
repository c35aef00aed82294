package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mouse-blink/jsoned/internal/adapter"
	m "github.com/mouse-blink/jsoned/internal/model"
	"go.uber.org/zap"
)

// DefaultFileName names documents that have never been saved.
const DefaultFileName = "untitled.json"

var (
	// ErrNoFilePath is returned by Save when the document has no backing file.
	ErrNoFilePath = errors.New("document has no file path, use save as")
	// ErrEmptyKey is returned by Create without a key name.
	ErrEmptyKey = errors.New("key name is empty")
	// ErrDeleteFailed is returned when nothing could be deleted at a path.
	ErrDeleteFailed = errors.New("nothing to delete at path")
	// ErrNoDocument is returned when an operation needs an open document.
	ErrNoDocument = errors.New("no document is open")
)

// Editor is the editing session: it owns the open document and everything
// the user has selected or configured while working on it.
//
//nolint:interfacebloat // The session is the single entry point of the UI.
type Editor interface {
	New(name string)
	NewFile(path m.FilePath)
	Open(path m.FilePath) error
	Save() error
	SaveAs(path m.FilePath) error

	Document() *m.Value
	File() m.File
	Dirty() bool

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

// EditorOption configures an Editor.
type EditorOption func(*editor)

// WithTemplateFields seeds the template fields.
func WithTemplateFields(fields ...string) EditorOption {
	return func(e *editor) {
		for _, f := range fields {
			e.AddTemplateField(f)
		}
	}
}

// WithPreviewIndent sets the indentation of Preview output.
func WithPreviewIndent(indent int) EditorOption {
	return func(e *editor) {
		e.indent = indent
	}
}

type editor struct {
	store     adapter.DocumentStore
	logger    *zap.Logger
	doc       *m.Value
	file      m.File
	dirty     bool
	selected  string
	templates []string
	indent    int
}

// NewEditor creates a session holding an empty untitled document.
func NewEditor(store adapter.DocumentStore, logger *zap.Logger, opts ...EditorOption) Editor {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &editor{
		store:  store,
		logger: logger,
		indent: adapter.DefaultIndent,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.New("")

	return e
}

func (e *editor) New(name string) {
	if name == "" {
		name = DefaultFileName
	}

	e.doc = m.NewObject()
	e.file = m.File{Name: name}
	e.dirty = false
	e.selected = ""
	e.logger.Debug("new document", zap.String("name", name))
}

// NewFile starts an empty document that Save will write to path.
func (e *editor) NewFile(path m.FilePath) {
	e.New(filepath.Base(string(path)))
	e.file.Path = path
}

// Open replaces the document with the one at path. On failure the current
// document is kept as it was.
func (e *editor) Open(path m.FilePath) error {
	doc, err := e.store.Load(path)
	if err != nil {
		e.logger.Warn("failed to open document", zap.String("path", string(path)), zap.Error(err))
		return err
	}

	e.doc = doc
	e.file = m.File{Name: filepath.Base(string(path)), Path: path}
	e.dirty = false
	e.selected = ""
	e.logger.Info("opened document", zap.String("path", string(path)))

	return nil
}

func (e *editor) Save() error {
	if e.file.Path == "" {
		return ErrNoFilePath
	}

	if err := e.store.Save(e.file.Path, e.doc); err != nil {
		e.logger.Error("failed to save document", zap.String("path", string(e.file.Path)), zap.Error(err))
		return err
	}

	e.dirty = false
	e.logger.Info("saved document", zap.String("path", string(e.file.Path)))

	return nil
}

func (e *editor) SaveAs(path m.FilePath) error {
	if path == "" {
		return ErrNoFilePath
	}

	prev := e.file
	e.file = m.File{Name: filepath.Base(string(path)), Path: path}

	if err := e.Save(); err != nil {
		e.file = prev
		return err
	}

	return nil
}

func (e *editor) Document() *m.Value { return e.doc }

func (e *editor) File() m.File { return e.file }

func (e *editor) Dirty() bool { return e.dirty }

func (e *editor) Get(pathText string) (*m.Value, bool) {
	return Get(e.doc, ParsePath(pathText))
}

// Preview renders the value at pathText as indented JSON, or "undefined".
func (e *editor) Preview(pathText string) string {
	v, ok := e.Get(pathText)
	if !ok {
		return "undefined"
	}

	data, err := adapter.Encode(v, e.indent)
	if err != nil {
		return err.Error()
	}

	return string(data)
}

// Create adds Key under Parent and returns the full path of the new value.
// An object, or a string with blank text, becomes an object pre-filled with
// the template fields when ApplyTemplate is set.
func (e *editor) Create(args m.CreateArgs) (string, error) {
	key := strings.TrimSpace(args.Key)
	if key == "" {
		return "", ErrEmptyKey
	}

	fullPath := JoinPath(args.Parent, key)

	var value *m.Value

	switch {
	case args.Type == m.InputObject,
		(args.Type == m.InputString || args.Type == "") && strings.TrimSpace(args.Text) == "":
		value = m.NewObject()
		if args.ApplyTemplate {
			for _, field := range e.templates {
				value.SetField(field, m.String(""))
			}
		}
	default:
		v, err := CoerceInput(args.Text, args.Type)
		if err != nil {
			return "", err
		}

		value = v
	}

	if err := e.set(fullPath, value); err != nil {
		return "", err
	}

	return fullPath, nil
}

func (e *editor) Update(pathText string, typ m.InputType, text string) error {
	if strings.TrimSpace(pathText) == "" {
		return ErrEmptyPath
	}

	value, err := CoerceInput(text, typ)
	if err != nil {
		return err
	}

	return e.set(pathText, value)
}

func (e *editor) set(pathText string, value *m.Value) error {
	if e.doc == nil {
		return ErrNoDocument
	}

	path := ParsePath(pathText)
	if err := Set(e.doc, path, value); err != nil {
		return err
	}

	e.dirty = true
	e.logger.Debug("set value", zap.String("path", path.String()), zap.String("type", TypeOf(value)))

	return nil
}

func (e *editor) Delete(pathText string) error {
	path := ParsePath(pathText)
	if path.IsRoot() {
		return ErrEmptyPath
	}

	if !Delete(e.doc, path) {
		return fmt.Errorf("%s: %w", path, ErrDeleteFailed)
	}

	if ParsePath(e.selected).HasPrefix(path) {
		e.selected = ""
	}

	e.dirty = true
	e.logger.Debug("deleted value", zap.String("path", path.String()))

	return nil
}

func (e *editor) Select(pathText string) {
	e.selected = strings.TrimSpace(pathText)
}

func (e *editor) Selected() string { return e.selected }

// NextIndex returns the length of the array at pathText, the index a new
// element would be appended at.
func (e *editor) NextIndex(pathText string) (int, bool) {
	v, ok := e.Get(pathText)
	if !ok || v.Kind() != m.KindArray {
		return 0, false
	}

	return v.Len(), true
}

func (e *editor) AddTemplateField(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(e.templates, name) {
		return false
	}

	e.templates = append(e.templates, name)

	return true
}

func (e *editor) RemoveTemplateField(name string) bool {
	i := slices.Index(e.templates, name)
	if i < 0 {
		return false
	}

	e.templates = slices.Delete(e.templates, i, i+1)

	return true
}

func (e *editor) TemplateFields() []string {
	return slices.Clone(e.templates)
}
