// Package viz is the interactive terminal front end: a Bubble Tea
// program that animates a field next to a live stats panel.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/life"
)

const (
	historyCapacity = 600
	minInterval     = 10 * time.Millisecond
	maxInterval     = 2 * time.Second
)

type TickMsg time.Time

// Model holds the field, playback state, and population history.
type Model struct {
	field     *life.Field
	cfg       *config.Config
	epoch     int
	interval  time.Duration
	running   bool
	history   []float64
	aliveCell string
	deadCell  string
}

func NewModel(f *life.Field, cfg *config.Config) Model {
	return Model{
		field:     f,
		cfg:       cfg,
		interval:  cfg.Interval(),
		running:   true,
		history:   make([]float64, 0, historyCapacity),
		aliveCell: aliveStyle.Render("█"),
		deadCell:  deadStyle.Render("·"),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
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
		case "r":
			m.reset()
		case "c":
			m.field.Clear()
			m.epoch = 0
			m.history = m.history[:0]
		case "+", "=":
			if m.interval/2 >= minInterval {
				m.interval /= 2
			}
		case "-", "_":
			if m.interval*2 <= maxInterval {
				m.interval *= 2
			}
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
	m.field.Update()
	m.epoch++
	m.history = append(m.history, float64(m.field.Population()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// reset rebuilds the field from the config. Pattern scenes come back
// identical; random scenes with a clock seed come back fresh.
func (m *Model) reset() {
	f, err := m.cfg.BuildField()
	if err != nil {
		return
	}
	m.field = f
	m.epoch = 0
	m.history = m.history[:0]
}

// View renders the field canvas beside the stats panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.renderField())

	var s strings.Builder
	s.WriteString(headerStyle.Render("GAME OF LIFE") + "\n")
	if m.running {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("population"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	pop := m.field.Population()
	cells := m.field.Width() * m.field.Height()
	s.WriteString(labelStyle.Render("Epoch") + valueStyle.Render(fmt.Sprintf("%d", m.epoch)) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", pop)) + "\n")
	s.WriteString(labelStyle.Render("Density") + valueStyle.Render(fmt.Sprintf("%.1f%%", 100*float64(pop)/float64(cells))) + "\n")
	s.WriteString(labelStyle.Render("Interval") + valueStyle.Render(m.interval.String()) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Step R:Reset\nC:Clear +/-:Speed Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func (m Model) renderField() string {
	var b strings.Builder
	for y := 0; y < m.field.Height(); y++ {
		for x := 0; x < m.field.Width(); x++ {
			if m.field.Get(x, y) {
				b.WriteString(m.aliveCell)
			} else {
				b.WriteString(m.deadCell)
			}
		}
		if y < m.field.Height()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
