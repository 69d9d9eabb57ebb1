package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	StatusDone = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#53f72b"))

	StatusRecording = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Blink(true)

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// themeStyles are the per-theme renderers for maze segments.
type themeStyles struct {
	header    lipgloss.Style
	wall      lipgloss.Style
	visited   lipgloss.Style
	unvisited lipgloss.Style
	current   lipgloss.Style
	goal      lipgloss.Style
	graph     lipgloss.Style
}

func stylesFor(t Theme) themeStyles {
	return themeStyles{
		header:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		wall:      lipgloss.NewStyle().Foreground(t.Wall),
		visited:   lipgloss.NewStyle().Background(t.Visited),
		unvisited: lipgloss.NewStyle().Background(t.Unvisited),
		current:   lipgloss.NewStyle().Background(t.Current),
		goal:      lipgloss.NewStyle().Background(t.Goal),
		graph:     lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
	}
}

// ProgressBar renders the visited fraction as a colored bar
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.8 {
		return SparkHigh.Render(bar)
	} else if percent > 0.4 {
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}
