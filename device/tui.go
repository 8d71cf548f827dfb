package device

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pickup/game"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ledColors maps brightness 0..9 onto a dark-to-bright green ramp in the
// 256-color space. Level 0 is a just-visible dot so the matrix outline
// reads like unlit LEDs.
var ledColors = [10]string{"235", "22", "22", "28", "28", "34", "34", "40", "46", "46"}

func ledColor(b int) string {
	if b < 0 {
		b = 0
	}
	if b > 9 {
		b = 9
	}
	return ledColors[b]
}

var (
	matrixStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the simulator TUI. It polls the Terminal device on a short tick
// rather than having the game push frames at it.
type Model struct {
	dev     *Terminal
	fb      [game.GridSize * game.GridSize]int
	heading float64
	scroll  string
}

func NewModel(dev *Terminal) Model {
	return Model{dev: dev}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			m.dev.SetHeading(0)
		case "right":
			m.dev.SetHeading(90)
		case "down":
			m.dev.SetHeading(180)
		case "left":
			m.dev.SetHeading(270)
		case " ":
			m.dev.Shake()
		case "a":
			m.dev.Press(game.ButtonA)
		case "b":
			m.dev.Press(game.ButtonB)
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.fb, m.heading, m.scroll = m.dev.Snapshot()
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var grid strings.Builder
	for y := 0; y < game.GridSize; y++ {
		for x := 0; x < game.GridSize; x++ {
			b := m.fb[y*game.GridSize+x]
			cell := lipgloss.NewStyle().Foreground(lipgloss.Color(ledColor(b)))
			grid.WriteString(cell.Render("██"))
		}
		if y < game.GridSize-1 {
			grid.WriteByte('\n')
		}
	}

	facing := game.FromHeading(m.heading).String()
	if facing == "" {
		facing = "-"
	}
	status := fmt.Sprintf("HDG %3.0f (%s)", m.heading, facing)
	if m.scroll != "" {
		status += "   " + m.scroll
	}

	var s strings.Builder
	s.WriteString(matrixStyle.Render(grid.String()))
	s.WriteByte('\n')
	s.WriteString(status)
	s.WriteByte('\n')
	s.WriteString(helpStyle.Render("arrows point · space step · a/b buttons · q quit"))
	s.WriteByte('\n')
	return s.String()
}
