// Package live renders a running simulation as a terminal UI.
package live

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mgrid/casim/internal/automata"
	"github.com/mgrid/casim/internal/metrics"
	"github.com/mgrid/casim/internal/sim"
)

const historyCapacity = 600

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)

	// One style per cell state; states beyond the palette wrap around.
	stateStyles = []lipgloss.Style{
		lipgloss.NewStyle(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
)

type TickMsg time.Time

// Model drives a Simulator from bubbletea events.
type Model struct {
	sim        *sim.Simulator
	running    bool
	interval   time.Duration
	popHistory []float64
	showHelp   bool
}

// NewModel wraps an initialized simulator.
func NewModel(s *sim.Simulator) Model {
	return Model{
		sim:        s,
		running:    true,
		interval:   time.Second / 10,
		popHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the simulation on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.step()
		case "u":
			m.sim.Undo()
			m.syncHistory()
		case "y":
			m.sim.Redo()
			m.syncHistory()
		case "r":
			m.sim.Reset()
			m.popHistory = m.popHistory[:0]
		case "+", "=":
			if m.interval > time.Second/60 {
				m.interval /= 2
			}
		case "-", "_":
			if m.interval < 2*time.Second {
				m.interval *= 2
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			// Canvas has 1 row / 2 columns of padding; each cell is 2
			// columns wide.
			m.sim.Click((msg.X-2)/2, msg.Y-1)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	records, err := m.sim.Step(1)
	if err != nil {
		return
	}
	for _, rec := range records {
		m.popHistory = append(m.popHistory, float64(rec.Population))
	}
	if len(m.popHistory) > historyCapacity {
		m.popHistory = m.popHistory[len(m.popHistory)-historyCapacity:]
	}
}

// syncHistory trims the population chart back to the current generation
// after undo or redo.
func (m *Model) syncHistory() {
	if gen := m.sim.Generation(); gen < len(m.popHistory) {
		m.popHistory = m.popHistory[:gen]
	}
}

// View renders the grid next to a stats panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.renderGrid())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.sim.Mode())) + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.popHistory) > 1 {
		chart := asciigraph.Plot(m.popHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	summary := m.sim.MetricsSummary()
	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Generation())) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", summary.Population)) + "\n")
	s.WriteString(labelStyle.Render("Density") + valueStyle.Render(fmt.Sprintf("%.3f", summary.Density)) + "\n")
	if info, ok := m.sim.Cycle(); ok {
		s.WriteString(labelStyle.Render("Cycle") + valueStyle.Render(fmt.Sprintf("period %d @ gen %d", info.Period, info.FirstSeen)) + "\n")
	}
	if g, err := m.sim.GridSnapshot(); err == nil {
		s.WriteString(labelStyle.Render("Entropy") + valueStyle.Render(fmt.Sprintf("%.3f", metrics.Entropy(g))) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Step R:Reset Q:Quit\nU:Undo Y:Redo +/-:Speed ?:Help"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  N        - Advance one generation   ║
║  U        - Undo last generation     ║
║  Y        - Redo undone generation   ║
║  R        - Reset the grid           ║
║  +/-      - Faster/slower ticks      ║
║  Click    - Toggle/paint a cell      ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

func (m Model) renderGrid() string {
	a := m.sim.Automaton()
	if a == nil {
		return ""
	}
	g := automata.DisplayGrid(a)
	cells := g.Cells()

	var b strings.Builder
	for y := 0; y < g.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			v := cells[y*g.W+x]
			if v == 0 {
				b.WriteString("  ")
				continue
			}
			style := stateStyles[int(v)%len(stateStyles)]
			b.WriteString(style.Render("██"))
		}
	}
	return b.String()
}
