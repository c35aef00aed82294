package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/jsoned/internal/adapter"
	adaptermocks "github.com/mouse-blink/jsoned/internal/adapter/mocks"
	"github.com/mouse-blink/jsoned/internal/controller"
	controllermocks "github.com/mouse-blink/jsoned/internal/controller/mocks"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_Edit_OpensExistingFile(t *testing.T) {
	// Arrange
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)
	doc := mustDecode(t, `{"a":1}`)

	store.EXPECT().Exists(m.FilePath("doc.json")).Return(true, nil)
	store.EXPECT().Load(m.FilePath("doc.json")).Return(doc, nil)

	var started controller.StartConfig

	ui.EXPECT().Start(mock.Anything, mock.Anything).RunAndReturn(func(opts ...controller.StartOption) error {
		started = controller.NewStartConfig(opts...)
		return nil
	})

	wf := NewWorkflow(store, ui, nil, WithTemplateFields("id"))

	// Act
	err := wf.Edit(EditArgs{File: "doc.json", ApplyTemplate: true})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, started.Session())
	assert.Same(t, doc, started.Session().Document())
	assert.Equal(t, []string{"id"}, started.Session().TemplateFields())
	assert.True(t, started.ApplyTemplate())
}

func TestWorkflow_Edit_MissingFileStartsNewDocument(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)

	store.EXPECT().Exists(m.FilePath("new.json")).Return(false, nil)

	var session controller.Session

	ui.EXPECT().Start(mock.Anything, mock.Anything).RunAndReturn(func(opts ...controller.StartOption) error {
		session = controller.NewStartConfig(opts...).Session()
		return nil
	})

	require.NoError(t, NewWorkflow(store, ui, nil).Edit(EditArgs{File: "new.json"}))
	assert.Equal(t, m.File{Name: "new.json", Path: "new.json"}, session.File())
	assert.Equal(t, `{}`, compact(t, session.Document()))
}

func TestWorkflow_Edit_Untitled(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, NewWorkflow(adaptermocks.NewMockDocumentStore(t), ui, nil).Edit(EditArgs{}))
}

func TestWorkflow_Edit_LoadError(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)
	loadErr := errors.New("load failed")

	store.EXPECT().Exists(m.FilePath("doc.json")).Return(true, nil)
	store.EXPECT().Load(m.FilePath("doc.json")).Return(nil, loadErr)

	err := NewWorkflow(store, ui, nil).Edit(EditArgs{File: "doc.json"})
	require.ErrorIs(t, err, loadErr)
}

func TestWorkflow_Tree(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)
	doc := mustDecode(t, `[1]`)

	store.EXPECT().Load(m.FilePath("dir/list.json")).Return(doc, nil)
	ui.EXPECT().DisplayTree(m.File{Name: "list.json", Path: "dir/list.json"}, doc).Return(nil)

	require.NoError(t, NewWorkflow(store, ui, nil).Tree(TreeArgs{File: "dir/list.json"}))
}

func TestWorkflow_Get(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)
	doc := mustDecode(t, `{"a":{"b":[true]}}`)

	store.EXPECT().Load(m.FilePath("doc.json")).Return(doc, nil).Twice()
	ui.EXPECT().DisplayValue("a.b[0]", mock.Anything, true).
		Run(func(_ string, value *m.Value, _ bool) {
			assert.True(t, value.AsBool())
		}).
		Return(nil)
	ui.EXPECT().DisplayValue("a.c", (*m.Value)(nil), false).Return(nil)

	wf := NewWorkflow(store, ui, nil)
	require.NoError(t, wf.Get(GetArgs{File: "doc.json", Path: "a.b[0]"}))
	require.NoError(t, wf.Get(GetArgs{File: "doc.json", Path: "a.c"}))
}

func TestWorkflow_Set(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)
	doc := mustDecode(t, `{"a":5}`)

	store.EXPECT().Load(m.FilePath("doc.json")).Return(doc, nil)
	store.EXPECT().Save(m.FilePath("doc.json"), doc).Return(nil)
	ui.EXPECT().DisplayStatus("set a.b in doc.json", nil).Return()

	err := NewWorkflow(store, ui, nil).Set(SetArgs{File: "doc.json", Path: "a.b", Type: m.InputNumber, Text: "1"})

	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":1}}`, compact(t, doc))
}

func TestWorkflow_Set_ErrorSkipsSave(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)

	store.EXPECT().Load(m.FilePath("doc.json")).Return(mustDecode(t, `{"a":[]}`), nil)

	err := NewWorkflow(store, ui, nil).Set(SetArgs{File: "doc.json", Path: "a.name", Type: m.InputString, Text: "x"})

	require.ErrorIs(t, err, ErrKeyOnArray)
	assert.Contains(t, err.Error(), "set a.name")
}

func TestWorkflow_Create(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)
	doc := mustDecode(t, `{"users":[]}`)

	store.EXPECT().Load(m.FilePath("doc.json")).Return(doc, nil)
	store.EXPECT().Save(m.FilePath("doc.json"), doc).Return(nil)
	ui.EXPECT().DisplayStatus("created users.0 in doc.json", nil).Return()

	wf := NewWorkflow(store, ui, nil, WithTemplateFields("id"))
	err := wf.Create(CreateArgs{
		File:       "doc.json",
		CreateArgs: m.CreateArgs{Parent: "users", Key: "0", Type: m.InputObject, ApplyTemplate: true},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"users":[{"id":""}]}`, compact(t, doc))
}

func TestWorkflow_Delete(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)
	doc := mustDecode(t, `{"a":[10,20,30]}`)

	store.EXPECT().Load(m.FilePath("doc.json")).Return(doc, nil).Twice()
	store.EXPECT().Save(m.FilePath("doc.json"), doc).Return(nil).Once()
	ui.EXPECT().DisplayStatus("deleted a[1] in doc.json", nil).Return()

	wf := NewWorkflow(store, ui, nil)
	require.NoError(t, wf.Delete(DeleteArgs{File: "doc.json", Path: "a[1]"}))
	assert.Equal(t, `{"a":[10,30]}`, compact(t, doc))

	err := wf.Delete(DeleteArgs{File: "doc.json", Path: "a[9]"})
	require.ErrorIs(t, err, ErrDeleteFailed)
}

func TestWorkflow_Delete_SaveError(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)
	saveErr := errors.New("read-only")

	store.EXPECT().Load(m.FilePath("doc.json")).Return(mustDecode(t, `{"a":1}`), nil)
	store.EXPECT().Save(m.FilePath("doc.json"), mock.Anything).Return(saveErr)

	err := NewWorkflow(store, ui, nil).Delete(DeleteArgs{File: "doc.json", Path: "a"})
	require.ErrorIs(t, err, saveErr)
}

func TestWorkflow_New(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)

	store.EXPECT().Exists(m.FilePath("fresh.json")).Return(false, nil)
	store.EXPECT().Save(m.FilePath("fresh.json"), m.NewObject()).Return(nil)
	ui.EXPECT().DisplayStatus("created fresh.json", nil).Return()

	require.NoError(t, NewWorkflow(store, ui, nil).New(NewArgs{File: "fresh.json"}))
}

func TestWorkflow_New_RefusesOverwrite(t *testing.T) {
	store := adaptermocks.NewMockDocumentStore(t)
	ui := controllermocks.NewMockUI(t)

	store.EXPECT().Exists(m.FilePath("old.json")).Return(true, nil).Twice()
	store.EXPECT().Save(m.FilePath("old.json"), mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplayStatus("created old.json", nil).Return()

	wf := NewWorkflow(store, ui, nil)
	require.ErrorIs(t, wf.New(NewArgs{File: "old.json"}), ErrFileExists)
	require.NoError(t, wf.New(NewArgs{File: "old.json", Force: true}))
}

func TestWorkflow_Format(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	require.NoError(t, os.WriteFile(first, []byte(`{"b":1,"a":[1,2]}`), 0o600))
	require.NoError(t, os.WriteFile(second, []byte(`[ ]`), 0o600))

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayStatus("formatted 2 file(s)", nil).Return()

	wf := NewWorkflow(adapter.NewLocalDocumentStore(2), ui, nil)
	require.NoError(t, wf.Format(FormatArgs{Files: []m.FilePath{m.FilePath(first), m.FilePath(second)}, Threads: 4}))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}\n", string(data))

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWorkflow_Format_ReportsFailingFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")

	require.NoError(t, os.WriteFile(good, []byte(`{"x":true}`), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte(`{"x":`), 0o600))

	wf := NewWorkflow(adapter.NewLocalDocumentStore(2), controllermocks.NewMockUI(t), nil)
	err := wf.Format(FormatArgs{Files: []m.FilePath{m.FilePath(good), m.FilePath(bad)}, Threads: 1})

	require.ErrorIs(t, err, adapter.ErrInvalidJSON)
	assert.Contains(t, err.Error(), "bad.json")

	data, err := os.ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"x\": true\n}\n", string(data))

	data, err = os.ReadFile(bad)
	require.NoError(t, err)
	assert.Equal(t, `{"x":`, string(data))
}
