package controller

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/mouse-blink/jsoned/internal/adapter"
	m "github.com/mouse-blink/jsoned/internal/model"
)

var errFakeMissing = errors.New("missing path")

// fakeSession is an in-memory Session that walks documents through
// flattenTree instead of the real path accessor.
type fakeSession struct {
	doc       *m.Value
	file      m.File
	dirty     bool
	selected  string
	templates []string

	saveErr error
	saves   int
	savedAs m.FilePath
	created []m.CreateArgs
	updated []string
	deleted []string
}

func newFakeSession(doc *m.Value) *fakeSession {
	if doc == nil {
		doc = m.NewObject()
	}

	return &fakeSession{doc: doc, file: m.File{Name: "test.json", Path: "test.json"}}
}

func (f *fakeSession) lookup(path string) (treeRow, bool) {
	if path == "" {
		return treeRow{value: f.doc}, true
	}

	for _, row := range flattenTree(f.doc, nil) {
		if row.path == path {
			return row, true
		}
	}

	return treeRow{}, false
}

func (f *fakeSession) Document() *m.Value { return f.doc }
func (f *fakeSession) File() m.File       { return f.file }
func (f *fakeSession) Dirty() bool        { return f.dirty }

func (f *fakeSession) Save() error {
	if f.saveErr != nil {
		return f.saveErr
	}

	f.saves++
	f.dirty = false

	return nil
}

func (f *fakeSession) SaveAs(path m.FilePath) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	f.savedAs = path
	f.file = m.File{Name: string(path), Path: path}
	f.dirty = false

	return nil
}

func (f *fakeSession) Get(path string) (*m.Value, bool) {
	row, ok := f.lookup(path)
	return row.value, ok
}

func (f *fakeSession) Preview(path string) string {
	v, ok := f.Get(path)
	if !ok {
		return "undefined"
	}

	data, _ := adapter.Encode(v, adapter.DefaultIndent)

	return string(data)
}

func (f *fakeSession) Create(args m.CreateArgs) (string, error) {
	parent, ok := f.lookup(args.Parent)
	if !ok || !parent.value.IsContainer() {
		return "", errFakeMissing
	}

	value := fakeValue(args.Type, args.Text)
	if args.Type == m.InputString && strings.TrimSpace(args.Text) == "" {
		value = m.NewObject()
	}

	f.created = append(f.created, args)
	f.dirty = true

	if parent.value.Kind() == m.KindArray {
		i, err := strconv.Atoi(args.Key)
		if err != nil {
			return "", err
		}

		parent.value.SetIndex(i, value)

		return arrayChildPath(args.Parent, i), nil
	}

	parent.value.SetField(args.Key, value)

	return objectChildPath(args.Parent, args.Key), nil
}

func (f *fakeSession) Update(path string, typ m.InputType, text string) error {
	if !f.replace(path, fakeValue(typ, text)) {
		return errFakeMissing
	}

	f.updated = append(f.updated, path)
	f.dirty = true

	return nil
}

func (f *fakeSession) Delete(path string) error {
	if !f.replace(path, nil) {
		return errFakeMissing
	}

	f.deleted = append(f.deleted, path)
	f.dirty = true

	return nil
}

// replace swaps the value at path, removing it when value is nil.
func (f *fakeSession) replace(path string, value *m.Value) bool {
	row, ok := f.lookup(path)
	if !ok || path == "" {
		return false
	}

	parent, _ := f.lookup(row.parent)

	if parent.value.Kind() == m.KindArray {
		i, _ := strconv.Atoi(strings.Trim(row.label, "[]"))
		if value == nil {
			return parent.value.RemoveIndex(i)
		}

		return parent.value.SetIndex(i, value)
	}

	if value == nil {
		return parent.value.DeleteField(row.label)
	}

	return parent.value.SetField(row.label, value)
}

func (f *fakeSession) Select(path string) { f.selected = path }
func (f *fakeSession) Selected() string   { return f.selected }

func (f *fakeSession) NextIndex(path string) (int, bool) {
	v, ok := f.Get(path)
	if !ok || v.Kind() != m.KindArray {
		return 0, false
	}

	return v.Len(), true
}

func (f *fakeSession) AddTemplateField(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(f.templates, name) {
		return false
	}

	f.templates = append(f.templates, name)

	return true
}

func (f *fakeSession) RemoveTemplateField(name string) bool {
	i := slices.Index(f.templates, strings.TrimSpace(name))
	if i < 0 {
		return false
	}

	f.templates = slices.Delete(f.templates, i, i+1)

	return true
}

func (f *fakeSession) TemplateFields() []string { return f.templates }

func fakeValue(typ m.InputType, text string) *m.Value {
	switch typ {
	case m.InputNumber:
		n, _ := strconv.ParseFloat(text, 64)
		return m.Number(n)
	case m.InputBoolean:
		return m.Bool(strings.EqualFold(strings.TrimSpace(text), "true"))
	case m.InputNull:
		return m.Null()
	case m.InputObject:
		return m.NewObject()
	case m.InputArray:
		return m.NewArray()
	default:
		return m.String(text)
	}
}
