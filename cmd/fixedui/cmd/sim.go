package cmd

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "sim",
		Short: "Simulate the display in the terminal",
		Long: `Run a showcase demo in the terminal. The framebuffer is drawn with
half-block characters, two panel rows per terminal row.

Click with the mouse to tap the panel. Space taps the centre of the first
button, r resets the counter, ? toggles the full help and q quits.

Demos: hello (default), layouts, align`,
		Usage: "fixedui sim [demo]",
		Run:   runSim,
	})
}

// chromeLines is the number of terminal rows around the panel: the title
// above it, the status line and the help line below.
const chromeLines = 3

var (
	simTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	simStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	simErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type simKeyMap struct {
	Tap   key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k simKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Help, k.Quit}
}

func (k simKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tap, k.Reset}, {k.Help, k.Quit}}
}

var simKeys = simKeyMap{
	Tap: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "tap button"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset counter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type simModel struct {
	s       *session
	keys    simKeyMap
	help    help.Model
	cols    int
	rows    int
	pressed bool
	err     error
}

func newSimModel(s *session, termW, termH int) *simModel {
	m := &simModel{s: s, keys: simKeys, help: help.New()}
	m.resize(termW, termH)
	return m
}

func (m *simModel) Init() tea.Cmd {
	return nil
}

// resize fits the panel into the terminal keeping its aspect ratio. Each
// cell covers one panel column and two panel rows.
func (m *simModel) resize(termW, termH int) {
	b := m.s.canvas.Bounds()
	m.cols, m.rows = fitPanel(termW, termH-chromeLines, b.Dx(), b.Dy())
	m.help.Width = termW
}

func fitPanel(cols, rows, width, height int) (int, int) {
	if cols < 1 || rows < 1 || width < 1 || height < 1 {
		return 0, 0
	}
	cols = min(cols, width)
	rows = min(rows, (height+1)/2)
	if cols*height > 2*rows*width {
		cols = max(1, 2*rows*width/height)
	} else {
		rows = max(1, cols*height/(2*width))
	}
	return cols, rows
}

// toPanel maps a terminal cell to panel coordinates. The panel starts on
// the row below the title.
func (m *simModel) toPanel(x, y int) (geometry.Point, bool) {
	y--
	if m.cols == 0 || x < 0 || y < 0 || x >= m.cols || y >= m.rows {
		return geometry.Point{}, false
	}
	b := m.s.canvas.Bounds()
	return geometry.Point{
		X: (float64(x) + 0.5) * float64(b.Dx()) / float64(m.cols),
		Y: (float64(y) + 0.5) * float64(b.Dy()) / float64(m.rows),
	}, true
}

func (m *simModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tap):
			center, ok := m.s.buttonCenter()
			if !ok {
				m.err = fmt.Errorf("demo %q has no button", m.s.demo.Name)
				return m, nil
			}
			m.err = nil
			m.guard("cmd.sim.tap", func() { m.s.tap(center) })
		case key.Matches(msg, m.keys.Reset):
			m.s.state.SetData(0)
			m.s.paint()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.MouseMsg:
		p, inside := m.toPanel(msg.X, msg.Y)
		ev := platform.MouseEvent{Pos: p, Button: platform.MouseLeft}
		var deliver func(platform.MouseEvent)
		switch msg.Action {
		case tea.MouseActionPress:
			if !inside || msg.Button != tea.MouseButtonLeft {
				return m, nil
			}
			ev.Count = 1
			m.pressed = true
			deliver = m.s.window.MouseDown
		case tea.MouseActionRelease:
			if !m.pressed {
				return m, nil
			}
			m.pressed = false
			deliver = m.s.window.MouseUp
		case tea.MouseActionMotion:
			if !inside {
				return m, nil
			}
			deliver = m.s.window.MouseMove
		default:
			return m, nil
		}
		m.guard("cmd.sim.mouse", func() {
			deliver(ev)
			m.s.paint()
		})
	}
	return m, nil
}

// guard runs fn, which reaches widget code, and turns a panic into a
// reported PanicError plus a status line so the terminal survives it.
func (m *simModel) guard(op string, fn func()) {
	done := false
	defer func() {
		if !done {
			m.err = fmt.Errorf("%s: widget panicked", op)
		}
	}()
	defer errors.Recover(op)
	fn()
	done = true
}

func (m *simModel) View() string {
	var b strings.Builder
	b.WriteString(simTitleStyle.Render("fixedui"))
	b.WriteString(" ")
	b.WriteString(m.s.demo.Title)
	b.WriteString("\n")

	b.WriteString(m.panel())

	if m.err != nil {
		b.WriteString(simErrorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(simStatusStyle.Render(fmt.Sprintf("data=%d  invalidations=%d",
			m.s.state.Data(), m.s.window.Invalidations())))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// panel draws the framebuffer with upper half blocks: the foreground is
// the even panel row and the background the odd one.
func (m *simModel) panel() string {
	if m.cols == 0 || m.rows == 0 {
		return ""
	}
	img := m.s.canvas.Scaled(m.cols, m.rows*2)
	styles := make(map[[2]color.RGBA]lipgloss.Style)

	var b strings.Builder
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			cell := [2]color.RGBA{img.RGBAAt(x, 2*y), img.RGBAAt(x, 2*y+1)}
			style, ok := styles[cell]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hexColor(cell[0]))).
					Background(lipgloss.Color(hexColor(cell[1])))
				styles[cell] = style
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func runSim(args []string) error {
	demo, args, err := lookupDemo(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("sim needs an interactive terminal")
	}
	termW, termH, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := newSession(cfg, demo, false)
	if err != nil {
		return err
	}
	defer s.close()

	p := tea.NewProgram(newSimModel(s, termW, termH), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
