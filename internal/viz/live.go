package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/shhawkins/three-body-simulator/internal/metrics"
	"github.com/shhawkins/three-body-simulator/internal/physics"
	"github.com/shhawkins/three-body-simulator/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 30
	historyCapacity = 600
	tickRate        = time.Second / 60
)

type TickMsg time.Time

// Model is the live terminal view. It owns a controller and feeds it
// wall-clock deltas at the frame rate; the controller's accumulator decides
// how much simulated time each delta is worth.
type Model struct {
	ctrl     *sim.Controller
	scenario string
	canvas   *Canvas
	frame    sim.Frame

	energyHistory []float64
	selected      int
	status        string
	lastTick      time.Time
	showHelp      bool
}

// NewModel wraps a controller for interactive display. The controller may
// be in any state; a fresh one sits in setup until the user starts it.
func NewModel(ctrl *sim.Controller, scenario string) Model {
	return Model{
		ctrl:          ctrl,
		scenario:      scenario,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		frame:         ctrl.Frame(),
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		now := time.Time(msg)
		elapsed := tickRate.Seconds()
		if !m.lastTick.IsZero() {
			elapsed = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now

		m.frame = m.ctrl.Step(elapsed)
		if m.frame.State == sim.StateRunning {
			m.observeEnergy()
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.togglePlay()
	case "s":
		m.report(m.ctrl.Stop())
	case "r":
		if m.report(m.ctrl.Reset(false)) {
			m.energyHistory = m.energyHistory[:0]
		}
	case "R":
		if m.report(m.ctrl.Reset(true)) {
			m.energyHistory = m.energyHistory[:0]
			m.selected = 0
		}
	case "f":
		m.ctrl.SetFreePlay(!m.ctrl.Options().FreePlay)
		m.status = ""
	case "+", "=":
		m.nudgeSpeed(1.25)
	case "-", "_":
		m.nudgeSpeed(0.8)
	case "tab":
		if n := len(m.frame.Bodies); n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case "up", "k":
		m.nudgeMass(1.05)
	case "down", "j":
		m.nudgeMass(0.95)
	case "?":
		m.showHelp = !m.showHelp
	}
	m.frame = m.ctrl.Frame()
	return m, nil
}

// togglePlay maps the space bar onto whichever start/pause/resume
// transition the current state allows.
func (m *Model) togglePlay() {
	switch m.ctrl.State() {
	case sim.StateSetup:
		if m.report(m.ctrl.Start()) {
			m.energyHistory = m.energyHistory[:0]
		}
	case sim.StateRunning:
		m.report(m.ctrl.Pause())
	case sim.StatePaused:
		m.report(m.ctrl.Resume())
	case sim.StateTerminated:
		m.status = "run over: r rewinds, R restores defaults"
	}
}

func (m *Model) nudgeSpeed(factor float64) {
	m.report(m.ctrl.SetSpeed(m.ctrl.Options().SpeedMultiplier * factor))
}

func (m *Model) nudgeMass(factor float64) {
	if m.selected >= len(m.frame.Bodies) {
		return
	}
	b := m.frame.Bodies[m.selected]
	m.report(m.ctrl.SetBodyMass(b.ID, b.Mass*factor))
}

// report surfaces a rejected operation in the status line instead of
// crashing the view. It returns true when the operation succeeded.
func (m *Model) report(err error) bool {
	if err != nil {
		m.status = err.Error()
		return false
	}
	m.status = ""
	return true
}

func (m *Model) observeEnergy() {
	e := metrics.TotalEnergy(m.frame.Bodies, m.ctrl.Options().G)
	m.energyHistory = append(m.energyHistory, e)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scenario)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	opts := m.ctrl.Options()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.frame.Time)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2fx", opts.SpeedMultiplier)) + "\n")
	freePlay := "off"
	if opts.FreePlay {
		freePlay = "on"
	}
	s.WriteString(labelStyle.Render("Free play") + valueStyle.Render(freePlay) + "\n")

	s.WriteString("\nBODIES\n")
	for i, b := range m.frame.Bodies {
		line := fmt.Sprintf("%-7s m %-6.2f |r| %-6.2f |v| %-6.2f",
			b.ID, b.Mass, math.Hypot(b.Position.X(), b.Position.Z()), b.Velocity.Len())
		if i == m.selected {
			s.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}

	if m.frame.Termination != nil {
		s.WriteString("\n" + bannerStyle.Render(terminationText(m.frame.Termination)) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\n" +
		"SP:Play/Pause S:Stop R/r:Reset\n" +
		"F:Free-play +/-:Speed Q:Quit\n" +
		"Tab:Select ↑↓:Mass ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n" + mainView
	}
	return mainView
}

func (m Model) statusLine() string {
	switch m.frame.State {
	case sim.StateRunning:
		return runningStyle.Render("RUNNING")
	case sim.StatePaused:
		return pausedStyle.Render("PAUSED")
	case sim.StateTerminated:
		return bannerStyle.Render("TERMINATED")
	default:
		return labelStyle.Render("SETUP") + valueStyle.Render(" press space to start")
	}
}

func terminationText(t *sim.Termination) string {
	names := strings.Join(t.Bodies, " + ")
	switch t.Cause {
	case sim.CauseCollision:
		return "COLLISION  " + names
	case sim.CauseBoundary:
		return "OUT OF BOUNDS  " + names
	}
	return "TERMINATED  " + names
}

// draw projects the horizontal plane onto the canvas: world X maps to
// screen x, world Z to screen y. The zoom tracks the farthest body so
// escaping bodies pull the view out rather than leaving it.
func (m *Model) draw() {
	m.canvas.Clear()

	cw, ch := m.canvas.Width*2, m.canvas.Height*4
	cx, cy := cw/2, ch/2
	half := float64(minInt(cw, ch))/2 - 2
	scale := half / m.viewRadius()

	opts := m.ctrl.Options()
	ringRadius := int(opts.BoundaryRadius * scale)
	if float64(ringRadius) <= half+2 {
		m.canvas.DrawCircle(cx, cy, ringRadius)
	}

	for _, b := range m.frame.Bodies {
		for _, p := range b.Trail {
			m.canvas.Set(cx+int(p.X()*scale), cy-int(p.Z()*scale))
		}
	}

	for _, b := range m.frame.Bodies {
		px := cx + int(b.Position.X()*scale)
		py := cy - int(b.Position.Z()*scale)
		r := int(physics.Radius(b.Mass) * scale)
		if r < 1 {
			r = 1
		}
		if r > 5 {
			r = 5
		}
		fillDisk(m.canvas, px, py, r)
	}

	if t := m.frame.Termination; t != nil {
		tx := cx + int(t.Point.X()*scale)
		ty := cy - int(t.Point.Z()*scale)
		m.canvas.DrawLine(tx-3, ty-3, tx+3, ty+3)
		m.canvas.DrawLine(tx-3, ty+3, tx+3, ty-3)
	}
}

// viewRadius picks the world-unit half-extent of the view: wide enough for
// the stock arrangement, growing with the farthest body, never far past
// the boundary.
func (m *Model) viewRadius() float64 {
	r := 12.0
	for _, b := range m.frame.Bodies {
		d := math.Hypot(b.Position.X(), b.Position.Z()) + physics.Radius(b.Mass)
		if d > r {
			r = d
		}
	}
	if limit := m.ctrl.Options().BoundaryRadius + 2; r > limit {
		r = limit
	}
	return r * 1.1
}

func fillDisk(c *Canvas, x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start/Pause/Resume       ║
║  S        - Stop (keep arrangement)  ║
║  r        - Reset to start snapshot  ║
║  R        - Reset to stock defaults  ║
║  F        - Toggle free play         ║
║  +/-      - Speed up / slow down     ║
║  Tab      - Select body              ║
║  Up/K     - Grow selected mass (+5%) ║
║  Down/J   - Shrink selected mass     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`
