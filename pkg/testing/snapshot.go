package testing

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/widget"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree and the last frame's display operations.
type Snapshot struct {
	WidgetTree *WidgetNode `yaml:"tree"`
	DisplayOps []DisplayOp `yaml:"ops,omitempty"`
}

// WidgetNode is one widget in the serialized tree.
type WidgetNode struct {
	ID       string        `yaml:"id"`
	Kind     string        `yaml:"kind"`
	Size     [2]float64    `yaml:"size,flow"`
	Offset   [2]float64    `yaml:"offset,flow"`
	Text     string        `yaml:"text,omitempty"`
	State    []string      `yaml:"state,omitempty,flow"`
	Children []*WidgetNode `yaml:"children,omitempty"`
}

// DisplayOp is one recorded drawing operation.
type DisplayOp struct {
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:"params,omitempty,flow"`
}

// CaptureSnapshot captures the widget tree and the operations of the last
// Pump. It returns an empty snapshot before launch.
func (t *WidgetTester[T]) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	root, err := t.Root()
	if err != nil {
		return snap
	}
	counter := &kindCounter{}
	snap.WidgetTree = captureWidgetNode(t.State().Arena(), root, counter)
	snap.DisplayOps = serializeOps(t.recorder.Ops())
	return snap
}

// updateEnv names the variable that turns MatchesFile into a rewrite of
// the golden file.
const updateEnv = "FIXEDUI_UPDATE_SNAPSHOTS"

// MatchesFile compares s with the golden YAML file at path and fails t with
// a line diff when they differ. With FIXEDUI_UPDATE_SNAPSHOTS=1 the file is
// rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("update snapshot %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		t.Fatalf("no snapshot at %s; run %s=1 go test -run '^%s$' to record it", path, updateEnv, t.Name())
		return
	case err != nil:
		t.Fatalf("read snapshot %s: %v", path, err)
		return
	}
	got, err := s.encode()
	if err != nil {
		t.Fatalf("encode snapshot: %v", err)
		return
	}
	if !bytes.Equal(got, want) {
		t.Errorf("snapshot %s differs:\n%s\nrun %s=1 go test -run '^%s$' to accept", path,
			lineDiff(string(want), string(got)), updateEnv, t.Name())
	}
}

// UpdateFile writes s to path as YAML, creating parent directories.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := s.encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns the line diff from other to s, or "" when both encode to
// the same document.
func (s *Snapshot) Diff(other *Snapshot) string {
	got, _ := s.encode()
	want, _ := other.encode()
	if bytes.Equal(got, want) {
		return ""
	}
	return lineDiff(string(want), string(got))
}

func (s *Snapshot) encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// kindCounter assigns stable IDs like "flex#0", "flex#1".
type kindCounter struct {
	counts map[string]int
}

func (c *kindCounter) next(kind string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[kind]
	c.counts[kind] = n + 1
	return fmt.Sprintf("%s#%d", kind, n)
}

func captureWidgetNode[T comparable](a *widget.Arena[T], ref widget.WidgetRef[T], counter *kindCounter) *WidgetNode {
	kind := a.Kind(ref.ID()).String()
	rect := a.LayoutRect(ref.ID())
	node := &WidgetNode{
		ID:     counter.next(kind),
		Kind:   kind,
		Size:   [2]float64{round2(rect.Width()), round2(rect.Height())},
		Offset: [2]float64{round2(rect.Left), round2(rect.Top)},
	}
	if v, ok := a.Lookup(ref.ID()); ok {
		if s, ok := displayText(&v); ok {
			node.Text = s
		}
	}
	st := a.State(ref.ID())
	for _, flag := range []struct {
		name string
		set  bool
	}{
		{"hot", st.IsHot()},
		{"active", st.IsActive()},
		{"focus", st.HasFocus()},
	} {
		if flag.set {
			node.State = append(node.State, flag.name)
		}
	}
	for _, child := range a.Children(ref.ID()) {
		node.Children = append(node.Children, captureWidgetNode(a, child, counter))
	}
	return node
}

func serializeOps(ops []render.Op) []DisplayOp {
	if len(ops) == 0 {
		return nil
	}
	out := make([]DisplayOp, len(ops))
	for i, op := range ops {
		out[i] = DisplayOp{Op: op.Op}
		if len(op.Params) == 0 {
			continue
		}
		params := make(map[string]any, len(op.Params))
		for k, v := range op.Params {
			params[k] = serializeParam(v)
		}
		out[i].Params = params
	}
	return out
}

func serializeParam(v any) any {
	switch v := v.(type) {
	case geometry.Rect:
		return [4]float64{round2(v.Left), round2(v.Top), round2(v.Right), round2(v.Bottom)}
	case float64:
		return round2(v)
	default:
		return v
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// lineDiff lists, by line number, each line that differs between want and
// got.
func lineDiff(want, got string) string {
	wl := strings.Split(want, "\n")
	gl := strings.Split(got, "\n")

	var sb strings.Builder
	sb.WriteString("--- want\n+++ got\n")
	for i := 0; i < max(len(wl), len(gl)); i++ {
		w, inWant := line(wl, i)
		g, inGot := line(gl, i)
		if inWant == inGot && w == g {
			continue
		}
		fmt.Fprintf(&sb, "@@ %d\n", i+1)
		if inWant {
			fmt.Fprintf(&sb, "-%s\n", w)
		}
		if inGot {
			fmt.Fprintf(&sb, "+%s\n", g)
		}
	}
	return sb.String()
}

func line(lines []string, i int) (string, bool) {
	if i < len(lines) {
		return lines[i], true
	}
	return "", false
}
