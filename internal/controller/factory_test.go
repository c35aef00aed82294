package controller

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

func TestNewUI_PlainOutputPrintsTreeTable(t *testing.T) {
	cmd, out, _ := newTestCommand()

	ui := NewUI(cmd, false)
	if _, ok := ui.(*SimpleUI); !ok {
		t.Fatalf("NewUI(false) returned %T, want *SimpleUI", ui)
	}

	session := newFakeSession(sampleDoc())
	if err := ui.Start(WithSession(session)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{"test.json", "user.tags[0]", "string", `"x"`} {
		if !strings.Contains(output, want) {
			t.Errorf("plain Start output missing %q:\n%s", want, output)
		}
	}
}

func TestNewUI_PlainOutputNeedsSession(t *testing.T) {
	cmd, _, _ := newTestCommand()

	if err := NewUI(cmd, false).Start(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Start() without session error = %v, want ErrNoSession", err)
	}
}

func TestNewUI_TerminalWritesStyledOutput(t *testing.T) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	ui := NewUI(cmd, true)
	if _, ok := ui.(*TUI); !ok {
		t.Fatalf("NewUI(true) returned %T, want *TUI", ui)
	}

	if err := ui.DisplayTree(m.File{Name: "empty.json"}, m.NewObject()); err != nil {
		t.Fatalf("DisplayTree() error = %v", err)
	}

	if !strings.Contains(out.String(), "Empty JSON object") {
		t.Fatalf("TUI DisplayTree output = %q", out.String())
	}
}

func TestIsTTY_NonTerminals(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) = true, want false")
	}

	file, err := os.CreateTemp(t.TempDir(), "doc-*.json")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer file.Close()

	if IsTTY(file) {
		t.Error("IsTTY(regular file) = true, want false")
	}

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Skip("null device not available")
	}
	defer devNull.Close()

	if IsTTY(devNull) {
		t.Error("IsTTY(null device) = true, want false")
	}
}
