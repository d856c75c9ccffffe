package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/dsconnelly/whirly/internal/analysis"
	"github.com/dsconnelly/whirly/internal/integrators"
	"github.com/dsconnelly/whirly/internal/solver"
	"github.com/dsconnelly/whirly/internal/spectral"
)

const (
	canvasWidth     = 64
	canvasHeight    = 30
	historyCapacity = 600
)

// Panel layout; the text styles inside the panel come from styles.go.
var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
)

type TickMsg time.Time

// Model steps the solver between frames and renders the evolving vorticity
// field alongside its diagnostics.
type Model struct {
	solver   *solver.Solver
	stepper  integrators.Stepper
	initial  *spectral.Field
	flowName string

	q        *spectral.Field
	t        float64
	duration float64

	canvas        *FieldCanvas
	cmax          float64
	stepsPerFrame int
	running       bool
	diverged      bool
	showHelp      bool

	energyHistory    []float64
	enstrophyHistory []float64
}

// NewModel initializes the viewer on the given solver and initial field. The
// color scale is fixed from the initial field so the shading stays comparable
// as the flow decays.
func NewModel(s *solver.Solver, q0 *spectral.Field, duration float64, flowName string) Model {
	cmax := spectral.MaxAbs(q0.Real())
	if cmax <= 0 {
		cmax = 1
	}

	return Model{
		solver:           s,
		stepper:          integrators.NewIFRK4(s.Tau(), s.Diffusion(), s.Nonlinear),
		initial:          q0,
		flowName:         flowName,
		q:                q0,
		duration:         duration,
		canvas:           NewFieldCanvas(canvasWidth, canvasHeight),
		cmax:             cmax,
		stepsPerFrame:    1,
		running:          true,
		energyHistory:    make([]float64, 0, historyCapacity),
		enstrophyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the integration.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.diverged && m.t < m.duration {
				m.running = !m.running
			}
		case "r":
			m.reset()
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "+", "=":
			if m.stepsPerFrame < 256 {
				m.stepsPerFrame *= 2
			}
		case "-", "_":
			if m.stepsPerFrame > 1 {
				m.stepsPerFrame /= 2
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the integration by up to stepsPerFrame timesteps.
func (m *Model) step() {
	tau := m.solver.Tau()
	for i := 0; i < m.stepsPerFrame && m.t < m.duration; i++ {
		m.q = m.stepper.Step(m.q)
		m.t += tau
	}

	if !m.q.Finite() {
		m.diverged = true
		m.running = false
		return
	}

	m.energyHistory = append(m.energyHistory, analysis.Energy(m.q))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
	m.enstrophyHistory = append(m.enstrophyHistory, analysis.Enstrophy(m.q))
	if len(m.enstrophyHistory) > historyCapacity {
		m.enstrophyHistory = m.enstrophyHistory[1:]
	}

	if m.t >= m.duration {
		m.running = false
	}
}

// reset restores the initial field.
func (m *Model) reset() {
	m.q = m.initial
	m.t = 0
	m.diverged = false
	m.running = true
	m.energyHistory = m.energyHistory[:0]
	m.enstrophyHistory = m.enstrophyHistory[:0]
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render(m.q.Real(), m.cmax))

	status := StatusRunning.Render("RUNNING")
	switch {
	case m.diverged:
		status = StatusError.Render("DIVERGED")
	case m.t >= m.duration:
		status = StatusRunning.Render("DONE")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(m.flowName)) + "\n\n")
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4), asciigraph.Width(26), asciigraph.Caption("Energy"))
		s.WriteString(ChartStyle.Padding(1, 0).Render(chart) + "\n")
		s.WriteString(SparklineChart(m.enstrophyHistory, 26) + " " + Subtle.Render("enstrophy") + "\n\n")
	}

	s.WriteString(MetricRow("Time", fmt.Sprintf("%.2f / %.2f", m.t, m.duration)) + "\n")
	s.WriteString(MetricRow("Energy", fmt.Sprintf("%.5f", analysis.Energy(m.q))) + "\n")
	s.WriteString(MetricRow("Enstrophy", fmt.Sprintf("%.5f", analysis.Enstrophy(m.q))) + "\n")

	u, v := m.solver.Velocity(m.q)
	s.WriteString(MetricRow("CFL", fmt.Sprintf("%.3f", analysis.CFL(u, v, m.solver.Tau()))) + "\n")
	s.WriteString(MetricRow("Steps/frame", fmt.Sprintf("%d", m.stepsPerFrame)) + "\n")
	s.WriteString(MetricRow("Theme", CurrentTheme.Name) + "\n")

	progress := 0.0
	if m.duration > 0 {
		progress = m.t / m.duration
	}
	s.WriteString("\n" + ProgressBar(progress, 26) + "\n")
	s.WriteString(KeyHint.Render("─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme +/-:Speed ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset to initial field   ║
║  Q        - Quit                     ║
║  +/=      - Double steps per frame   ║
║  -/_      - Halve steps per frame    ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// RunLive starts the interactive viewer and blocks until it exits.
func RunLive(s *solver.Solver, q0 *spectral.Field, duration float64, flowName string) error {
	program := tea.NewProgram(NewModel(s, q0, duration, flowName), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
