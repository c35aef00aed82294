package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/jsoned/internal/adapter"
	"github.com/mouse-blink/jsoned/internal/controller"
	m "github.com/mouse-blink/jsoned/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrFileExists is returned by New when the target exists and Force is unset.
var ErrFileExists = errors.New("file already exists")

// Workflow defines the operations behind each CLI command.
type Workflow interface {
	Edit(args EditArgs) error
	Tree(args TreeArgs) error
	Get(args GetArgs) error
	Set(args SetArgs) error
	Create(args CreateArgs) error
	Delete(args DeleteArgs) error
	New(args NewArgs) error
	Format(args FormatArgs) error
}

// EditArgs holds the arguments for the interactive editor.
type EditArgs struct {
	// File is opened when it exists and becomes the save target otherwise.
	// Empty starts an untitled document.
	File          m.FilePath
	ApplyTemplate bool
}

// TreeArgs holds the arguments for printing a document tree.
type TreeArgs struct {
	File m.FilePath
}

// GetArgs holds the arguments for reading one value.
type GetArgs struct {
	File m.FilePath
	Path string
}

// SetArgs holds the arguments for writing one value.
type SetArgs struct {
	File m.FilePath
	Path string
	Type m.InputType
	Text string
}

// CreateArgs holds the arguments for adding a key.
type CreateArgs struct {
	File m.FilePath
	m.CreateArgs
}

// DeleteArgs holds the arguments for removing a value.
type DeleteArgs struct {
	File m.FilePath
	Path string
}

// NewArgs holds the arguments for creating an empty document.
type NewArgs struct {
	File  m.FilePath
	Force bool
}

// FormatArgs holds the arguments for re-encoding documents.
type FormatArgs struct {
	Files   []m.FilePath
	Threads int
}

type workflow struct {
	store      adapter.DocumentStore
	ui         controller.UI
	logger     *zap.Logger
	editorOpts []EditorOption
}

// NewWorkflow creates a new Workflow. editorOpts configure every editing
// session the workflow opens.
func NewWorkflow(store adapter.DocumentStore, ui controller.UI, logger *zap.Logger, editorOpts ...EditorOption) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		store:      store,
		ui:         ui,
		logger:     logger,
		editorOpts: editorOpts,
	}
}

func (w *workflow) newEditor() Editor {
	return NewEditor(w.store, w.logger, w.editorOpts...)
}

func (w *workflow) Edit(args EditArgs) error {
	ed := w.newEditor()

	if args.File != "" {
		exists, err := w.store.Exists(args.File)
		if err != nil {
			return err
		}

		if exists {
			if err := ed.Open(args.File); err != nil {
				return err
			}
		} else {
			w.logger.Info("starting a new document", zap.String("path", string(args.File)))
			ed.NewFile(args.File)
		}
	}

	return w.ui.Start(
		controller.WithSession(ed),
		controller.WithApplyTemplate(args.ApplyTemplate),
	)
}

func (w *workflow) Tree(args TreeArgs) error {
	doc, err := w.store.Load(args.File)
	if err != nil {
		return err
	}

	return w.ui.DisplayTree(fileOf(args.File), doc)
}

func (w *workflow) Get(args GetArgs) error {
	doc, err := w.store.Load(args.File)
	if err != nil {
		return err
	}

	value, found := Get(doc, ParsePath(args.Path))
	w.logger.Debug("get", zap.String("path", args.Path), zap.Bool("found", found))

	return w.ui.DisplayValue(args.Path, value, found)
}

func (w *workflow) Set(args SetArgs) error {
	return w.mutate(args.File, func(ed Editor) (string, error) {
		if err := ed.Update(args.Path, args.Type, args.Text); err != nil {
			return "", fmt.Errorf("set %s: %w", args.Path, err)
		}

		return "set " + args.Path, nil
	})
}

func (w *workflow) Create(args CreateArgs) error {
	return w.mutate(args.File, func(ed Editor) (string, error) {
		path, err := ed.Create(args.CreateArgs)
		if err != nil {
			return "", fmt.Errorf("create %s: %w", JoinPath(args.Parent, args.Key), err)
		}

		return "created " + path, nil
	})
}

func (w *workflow) Delete(args DeleteArgs) error {
	return w.mutate(args.File, func(ed Editor) (string, error) {
		if err := ed.Delete(args.Path); err != nil {
			return "", fmt.Errorf("delete %s: %w", args.Path, err)
		}

		return "deleted " + args.Path, nil
	})
}

// mutate opens file, applies change and saves the result.
func (w *workflow) mutate(file m.FilePath, change func(Editor) (string, error)) error {
	ed := w.newEditor()
	if err := ed.Open(file); err != nil {
		return err
	}

	message, err := change(ed)
	if err != nil {
		return err
	}

	if err := ed.Save(); err != nil {
		return err
	}

	w.ui.DisplayStatus(fmt.Sprintf("%s in %s", message, ed.File().Name), nil)

	return nil
}

func (w *workflow) New(args NewArgs) error {
	exists, err := w.store.Exists(args.File)
	if err != nil {
		return err
	}

	if exists && !args.Force {
		return fmt.Errorf("%s: %w (use --force to overwrite)", args.File, ErrFileExists)
	}

	if err := w.store.Save(args.File, m.NewObject()); err != nil {
		return err
	}

	w.ui.DisplayStatus("created "+string(args.File), nil)

	return nil
}

// Format re-encodes every file with the store's indentation. Files are
// processed concurrently; the first failure stops files not yet started.
func (w *workflow) Format(args FormatArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(threads)

	for _, file := range args.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return w.formatFile(file)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w.ui.DisplayStatus(fmt.Sprintf("formatted %d file(s)", len(args.Files)), nil)

	return nil
}

func (w *workflow) formatFile(file m.FilePath) error {
	doc, err := w.store.Load(file)
	if err != nil {
		return err
	}

	if err := w.store.Save(file, doc); err != nil {
		return err
	}

	w.logger.Info("formatted", zap.String("path", string(file)))

	return nil
}

func fileOf(path m.FilePath) m.File {
	return m.File{Name: filepath.Base(string(path)), Path: path}
}
