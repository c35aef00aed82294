package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_DisplayTree_PrintsTable(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayTree(m.File{Name: "data.json"}, sampleDoc()); err != nil {
		t.Fatalf("DisplayTree() error = %v", err)
	}

	output := out.String()
	if !strings.HasPrefix(output, "data.json\n") {
		t.Fatalf("output does not start with file name:\n%s", output)
	}

	for _, want := range []string{"user.name", `"Ada"`, "user.tags[1]", "boolean", "count", "{0}", "7 PATHS"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayTree_Empty(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayTree(m.File{Name: "list.json"}, m.NewArray()); err != nil {
		t.Fatalf("DisplayTree() error = %v", err)
	}

	if got := out.String(); got != "list.json: empty array\n" {
		t.Fatalf("DisplayTree(empty) = %q", got)
	}
}

func TestSimpleUI_DisplayValue(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayValue("user.tags", m.NewArray(m.String("x"), m.Number(2)), true); err != nil {
		t.Fatalf("DisplayValue() error = %v", err)
	}

	if got, want := out.String(), "[\n  \"x\",\n  2\n]\n"; got != want {
		t.Fatalf("DisplayValue() = %q, want %q", got, want)
	}

	out.Reset()

	if err := ui.DisplayValue("missing", nil, false); err != nil {
		t.Fatalf("DisplayValue(missing) error = %v", err)
	}

	if got := out.String(); got != "undefined\n" {
		t.Fatalf("DisplayValue(missing) = %q, want undefined", got)
	}
}

func TestSimpleUI_DisplayStatus(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayStatus("saved data.json", nil)

	if !strings.Contains(out.String(), "saved data.json") {
		t.Fatalf("status output = %q", out.String())
	}

	ui.DisplayStatus("set failed", errors.New("boom"))

	if got := errOut.String(); !strings.Contains(got, "error:") || !strings.Contains(got, "set failed: boom") {
		t.Fatalf("error output = %q", got)
	}
}

func TestSimpleUI_Start(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.Start(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Start() without session error = %v, want ErrNoSession", err)
	}

	if err := ui.Start(WithSession(newFakeSession(sampleDoc()))); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if !strings.Contains(out.String(), "test.json") || !strings.Contains(out.String(), "user.name") {
		t.Fatalf("Start() output = %q", out.String())
	}
}
