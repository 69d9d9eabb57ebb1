package viz

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mazegen/internal/config"
	"github.com/san-kum/mazegen/internal/experiment"
	"github.com/san-kum/mazegen/internal/generator"
	"github.com/san-kum/mazegen/internal/logging"
	"github.com/san-kum/mazegen/internal/render"
)

const (
	historyCapacity = 600
	maxStepsPerTick = 64
	gifDelay        = 2
)

type TickMsg time.Time

// depthHistory keeps the most recent backtrack-stack depths for the graph.
type depthHistory struct {
	values []float64
}

func (h *depthHistory) OnStep(ev generator.Event) {
	if ev.Result == generator.Done {
		return
	}
	h.values = append(h.values, float64(ev.Depth))
	if len(h.values) > historyCapacity {
		h.values = h.values[len(h.values)-historyCapacity:]
	}
}

// Model drives one engine per tick and renders the grid between steps.
type Model struct {
	cfg           *config.Config
	reg           *experiment.Registry
	exp           *experiment.Experiment
	engine        *generator.Engine
	history       *depthHistory
	theme         Theme
	styles        themeStyles
	seed          int64
	stepsPerFrame int
	running       bool
	recording     bool
	frames        []*image.Paletted
	gifPath       string
	status        string
	showHelp      bool
}

// NewModel builds the first maze from cfg. Invalid dimensions fail here so
// the program never starts with a broken grid.
func NewModel(cfg *config.Config, reg *experiment.Registry) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	theme := GetTheme(cfg.Theme)
	m := Model{
		cfg:           cfg.Clone(),
		reg:           reg,
		theme:         theme,
		styles:        stylesFor(theme),
		seed:          cfg.Seed,
		stepsPerFrame: min(max(cfg.StepsPerFrame, 1), maxStepsPerTick),
		running:       true,
		gifPath:       "maze.gif",
	}
	if err := m.build(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// WithGIFPath sets where recordings are written.
func (m Model) WithGIFPath(path string) Model {
	m.gifPath = path
	return m
}

func (m *Model) build() error {
	exp := experiment.New(experiment.Config{
		Rows:   m.cfg.Rows,
		Cols:   m.cfg.Cols,
		Seed:   m.seed,
		Source: m.cfg.Source,
	})
	if err := exp.Setup(m.reg); err != nil {
		return err
	}
	m.exp = exp
	m.engine = exp.GetEngine()
	m.history = &depthHistory{values: make([]float64, 0, historyCapacity)}
	m.engine.AddObserver(m.history)
	return nil
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances generation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.saveGIF()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.advance(1)
			}
		case "r":
			m.reset()
		case "+", "=":
			m.stepsPerFrame = min(m.stepsPerFrame*2, maxStepsPerTick)
		case "-", "_":
			if m.stepsPerFrame > 1 {
				m.stepsPerFrame /= 2
			}
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = stylesFor(m.theme)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
				m.captureFrame()
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance(m.stepsPerFrame)
		}
		return m, m.tick()
	}
	return m, nil
}

// advance runs up to n steps and, while recording, captures one frame for
// the whole batch.
func (m *Model) advance(n int) {
	if m.engine.IsDone() {
		return
	}
	for i := 0; i < n && !m.engine.IsDone(); i++ {
		m.engine.Step()
	}
	if m.recording {
		m.captureFrame()
	}
}

func (m *Model) reset() {
	m.seed++
	if err := m.build(); err != nil {
		m.status = err.Error()
		logging.Logger().Error("reset failed", "err", err)
		return
	}
	m.frames = m.frames[:0]
	m.status = fmt.Sprintf("seed %d", m.seed)
	logging.Logger().Debug("maze reset", "seed", m.seed)
}

func (m *Model) captureFrame() {
	cur := m.engine.Current()
	m.frames = append(m.frames, render.Frame(m.engine.Grid().Snapshot(), m.cfg.Size, &cur))
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	f, err := os.Create(m.gifPath)
	if err != nil {
		m.status = err.Error()
		logging.Logger().Error("gif create failed", "path", m.gifPath, "err", err)
		return
	}
	defer f.Close()
	if err := render.WriteGIF(f, m.frames, gifDelay); err != nil {
		m.status = err.Error()
		logging.Logger().Error("gif encode failed", "path", m.gifPath, "err", err)
		return
	}
	m.status = fmt.Sprintf("saved %s (%d frames)", m.gifPath, len(m.frames))
	logging.Logger().Info("gif saved", "path", m.gifPath, "frames", len(m.frames))
}

// View renders the TUI interface.
func (m Model) View() string {
	grid := m.engine.Grid()
	mazeView := canvasStyle.Render(drawMaze(grid.Snapshot(), m.engine.Current(), m.styles))

	var s strings.Builder
	s.WriteString(m.styles.header.Render(fmt.Sprintf("MAZE %dx%d", grid.Rows(), grid.Cols())) + "\n")

	var status string
	switch {
	case m.engine.IsDone():
		status = StatusDone.Render("DONE")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	default:
		status = StatusRunning.Render("GENERATING")
	}
	if m.recording {
		status += "  " + StatusRecording.Render("● REC")
	}
	s.WriteString(status + "\n\n")

	if hist := m.history.values; len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Stack depth"))
		s.WriteString(m.styles.graph.Render(chart) + "\n\n")
	}

	visited := float64(grid.VisitedCount()) / float64(grid.Len())
	s.WriteString(labelStyle.Render("Visited") + ProgressBar(visited, 16) + valueStyle.Render(fmt.Sprintf(" %d/%d", grid.VisitedCount(), grid.Len())) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.engine.Steps())) + "\n")
	s.WriteString(labelStyle.Render("Depth") + valueStyle.Render(fmt.Sprintf("%d", m.engine.StackDepth())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d/frame", m.stepsPerFrame)) + "\n")
	s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d (%s)", m.seed, m.cfg.Source)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")

	s.WriteString("\nMETRICS\n")
	values := m.exp.Values()
	for _, name := range m.exp.MetricNames() {
		s.WriteString("  " + labelStyle.Render(name) + valueStyle.Render(fmt.Sprintf("%g", values[name])) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + valueStyle.Render(m.status) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Step R:Reset\nT:Theme G:Record Q:Quit\n+/-:Speed ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, mazeView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume generation  ║
║  N        - Single step when paused  ║
║  R        - Restart with next seed   ║
║  +/-      - Steps per frame          ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
