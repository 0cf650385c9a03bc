package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/fixedui/pkg/config"
	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/theme"
	"github.com/go-drift/fixedui/pkg/widget"
	"github.com/go-drift/fixedui/showcase"
)

// project writes a module with an optional fixedui.yaml and captures output.
func project(t *testing.T, yaml string) (string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return dir, &buf
}

func TestExecute_Version(t *testing.T) {
	_, buf := project(t, "")
	if err := Execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), Version) {
		t.Errorf("version output = %q", buf.String())
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	project(t, "")
	if err := Execute([]string{"frobnicate"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestExecute_DirRequiresValue(t *testing.T) {
	project(t, "")
	if err := Execute([]string{"--dir"}); err == nil {
		t.Error("expected error for --dir without a path")
	}
}

func TestExecute_CommandHelp(t *testing.T) {
	_, buf := project(t, "")
	if err := Execute([]string{"render", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "fixedui render") {
		t.Errorf("help output = %q", buf.String())
	}
}

func TestStatus(t *testing.T) {
	dir, buf := project(t, "display: {width: 128, height: 64}\n")
	if err := Execute([]string{"--dir", dir, "status"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"demo (com.example.demo)", "example.com/demo", "128x64"} {
		if !strings.Contains(got, want) {
			t.Errorf("status output missing %q:\n%s", want, got)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"defaults", "", false},
		{"too few widgets", "capacity: {widgets: 6}\n", true},
		{"windows below two", "capacity: {windows: 1}\n", true},
		{"bad log level", "log: {level: loud}\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, _ := project(t, tt.yaml)
			err := Execute([]string{"--dir", dir, "check"})
			if (err != nil) != tt.wantErr {
				t.Errorf("check error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    renderOptions
		wantErr bool
	}{
		{"defaults", nil, renderOptions{output: "fixedui.png"}, false},
		{"short output", []string{"-o", "a.png"}, renderOptions{output: "a.png"}, false},
		{"long output", []string{"--output=b.png"}, renderOptions{output: "b.png"}, false},
		{"taps", []string{"--taps", "3"}, renderOptions{output: "fixedui.png", taps: 3}, false},
		{"negative taps", []string{"-taps", "-1"}, renderOptions{}, true},
		{"missing path", []string{"-o"}, renderOptions{}, true},
		{"unknown flag", []string{"--fast"}, renderOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRender_WritesPNG(t *testing.T) {
	dir, buf := project(t, "")
	path := filepath.Join(dir, "out.png")
	if err := Execute([]string{"--dir", dir, "render", "-o", path, "--taps", "2"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "data=2") {
		t.Errorf("render output = %q", buf.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 240 {
		t.Errorf("image bounds = %v", b)
	}
	r, g, bl, _ := img.At(0, 0).RGBA()
	wr, wg, wb, _ := theme.Default().WindowBackground.RGBA()
	if r != wr || g != wg || bl != wb {
		t.Errorf("corner pixel = %v, want window background", img.At(0, 0))
	}
}

func TestRender_NoButton(t *testing.T) {
	dir, _ := project(t, "")
	path := filepath.Join(dir, "align.png")
	if err := Execute([]string{"--dir", dir, "render", "align", "-o", path, "--taps", "1"}); err == nil {
		t.Error("expected error tapping a demo without buttons")
	}
}

func TestRender_UnknownDemo(t *testing.T) {
	dir, _ := project(t, "")
	if err := Execute([]string{"--dir", dir, "render", "missing"}); err == nil {
		t.Error("expected error for unknown demo")
	}
}

func TestFitPanel(t *testing.T) {
	tests := []struct {
		name                      string
		cols, rows, width, height int
		wantCols, wantRows        int
	}{
		{"square in wide terminal", 80, 21, 240, 240, 42, 21},
		{"square in tall terminal", 40, 100, 240, 240, 40, 20},
		{"capped at panel size", 1000, 1000, 240, 240, 240, 120},
		{"wide panel", 80, 40, 128, 64, 80, 20},
		{"no room", 80, 0, 240, 240, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := fitPanel(tt.cols, tt.rows, tt.width, tt.height)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("fitPanel = %dx%d, want %dx%d", cols, rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func newTestSim(t *testing.T) *simModel {
	t.Helper()
	demo, _ := showcase.Lookup("hello")
	s, err := newSession(config.Default(), demo, false)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.close)
	return newSimModel(s, 80, 24)
}

func TestSim_SpaceTapsButton(t *testing.T) {
	m := newTestSim(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.s.state.Data() != 1 {
		t.Errorf("data = %d, want 1", m.s.state.Data())
	}
	if !strings.Contains(m.View(), "data=1") {
		t.Error("expected status line to show data=1")
	}
}

func TestSim_MouseClick(t *testing.T) {
	m := newTestSim(t)
	// Cell (21, 16) maps to about (123, 177), inside the button.
	m.Update(tea.MouseMsg{X: 21, Y: 16, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 21, Y: 16, Action: tea.MouseActionRelease})
	if m.s.state.Data() != 1 {
		t.Errorf("data = %d, want 1", m.s.state.Data())
	}

	// The title row is outside the panel.
	m.Update(tea.MouseMsg{X: 21, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 21, Y: 0, Action: tea.MouseActionRelease})
	if m.s.state.Data() != 1 {
		t.Errorf("data = %d after click outside panel", m.s.state.Data())
	}
}

func TestSim_ResetAndQuit(t *testing.T) {
	m := newTestSim(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.s.state.Data() != 0 {
		t.Errorf("data = %d after reset", m.s.state.Data())
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("expected quit command")
	}
}

func TestSim_PanelRows(t *testing.T) {
	m := newTestSim(t)
	if m.cols != 42 || m.rows != 21 {
		t.Fatalf("panel = %dx%d, want 42x21", m.cols, m.rows)
	}
	if got := strings.Count(m.panel(), "\n"); got != 21 {
		t.Errorf("panel has %d lines, want 21", got)
	}
}

type panicLog struct{ panics []*errors.PanicError }

func (p *panicLog) HandleError(*errors.Error)          {}
func (p *panicLog) HandlePanic(err *errors.PanicError) { p.panics = append(p.panics, err) }

func TestSim_PanickingActionIsReported(t *testing.T) {
	log := &panicLog{}
	errors.SetHandler(log)
	t.Cleanup(func() { errors.SetHandler(nil) })

	demo := showcase.Demo{Name: "boom", Title: "boom", Widgets: 1,
		Builder: func(a *widget.Arena[uint32]) widget.WidgetRef[uint32] {
			return widget.AddButton(a, "boom", func(*widget.EventCtx[uint32], *uint32, widget.Env) { panic("boom") })
		}}
	s, err := newSession(config.Default(), demo, false)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.close)
	m := newSimModel(s, 80, 24)

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if len(log.panics) != 1 {
		t.Fatalf("reported %d panics, want 1", len(log.panics))
	}
	if p := log.panics[0]; p.Op != "cmd.sim.tap" || p.Value != "boom" {
		t.Errorf("panic = %+v", p)
	}
	if !strings.Contains(m.View(), "cmd.sim.tap: widget panicked") {
		t.Error("expected the status line to report the panic")
	}
}
