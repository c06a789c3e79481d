package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/hiviz/pkg/analysis"
	"github.com/Dicklesworthstone/hiviz/pkg/camera"
	"github.com/Dicklesworthstone/hiviz/pkg/config"
	"github.com/Dicklesworthstone/hiviz/pkg/render"
	"github.com/Dicklesworthstone/hiviz/pkg/scene"
)

const (
	// chromeRows is the screen area reserved under the canvas: status bar
	// plus footer.
	chromeRows = 2

	// clickSuppressWindow swallows the synthetic click a terminal may emit
	// right after a drag or wheel gesture ends. The window is short and
	// timestamp-based, so a stuck suppression is impossible: it expires on
	// its own.
	clickSuppressWindow = 300 * time.Millisecond

	// dragThresholdCells separates a click from a pan: any cumulative
	// movement beyond this many cells makes the gesture a drag.
	dragThresholdCells = 1

	keyPanStep  = 6.0
	keyZoomStep = 1.25
)

type redrawMsg struct{}

type statsTickMsg time.Time

type configMsg struct {
	cfg config.Config
}

// Model is the Bubble Tea model for the interactive viewer. It owns the scene
// (camera, collapse set, filters) and mutates it directly in input handlers,
// so panning is visually immediate; the coalescing scheduler only defers the
// expensive frame raster, never the state change.
type Model struct {
	scene     *scene.Scene
	canvas    *cellCanvas
	sampler   *render.Sampler
	sched     *render.Scheduler
	watcher   *config.Watcher
	highValue float64

	width, height int
	ready         bool

	dragging      bool
	dragMoved     int
	lastX, lastY  int
	suppressUntil time.Time

	searching bool
	search    textinput.Model

	showHelp bool
	help     string

	stats render.Sample
	frame render.FrameStats

	now func() time.Time // injectable clock for tests
}

// NewModel builds the model around an existing scene. watcher may be nil.
func NewModel(sc *scene.Scene, watcher *config.Watcher) *Model {
	ti := textinput.New()
	ti.Placeholder = "name or id"
	ti.Prompt = "search: "
	ti.CharLimit = 64

	return &Model{
		scene:     sc,
		canvas:    newCellCanvas(80, 24),
		sampler:   render.NewSampler(render.DefaultSampleInterval),
		watcher:   watcher,
		highValue: analysis.HighPerformerThreshold(sc.Nodes, analysis.HighPerformerPercentile),
		search:    ti,
		help:      renderHelp(),
		now:       time.Now,
	}
}

// SetScheduler installs the coalescing redraw scheduler. Without one (as in
// tests) invalidate draws synchronously.
func (m *Model) SetScheduler(s *render.Scheduler) {
	m.sched = s
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{statsTick()}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.canvas.Resize(msg.Width, msg.Height-chromeRows)
		if !m.ready {
			m.ready = true
			m.fit()
		}
		m.invalidate()
		return m, nil

	case redrawMsg:
		m.drawFrame()
		return m, nil

	case statsTickMsg:
		m.stats = m.sampler.Current()
		return m, statsTick()

	case configMsg:
		m.applyConfig(msg.cfg)
		return m, waitForConfig(m.watcher)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			if m.scene.FocusOnMatch(m.search.Value(), m.viewportW(), m.viewportH()) != nil {
				m.invalidate()
			}
			m.stopSearch()
			return m, nil
		case "esc":
			m.stopSearch()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "/":
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()
	case "f":
		m.fit()
		m.invalidate()
	case "e":
		m.scene.Params.ShowEdges = !m.scene.Params.ShowEdges
		m.invalidate()
	case "t":
		m.scene.Params.ShowLabels = !m.scene.Params.ShowLabels
		m.invalidate()
	case "o":
		m.scene.Params.LODEnabled = !m.scene.Params.LODEnabled
		m.invalidate()
	case "x":
		m.scene.ExpandAll()
		m.invalidate()
	case "r":
		spec := m.scene.Spec
		spec.Seed = uint64(m.now().UnixNano())
		if err := m.scene.Regenerate(spec); err == nil {
			m.highValue = analysis.HighPerformerThreshold(m.scene.Nodes, analysis.HighPerformerPercentile)
			m.fit()
			m.invalidate()
		}
	case "+", "=":
		m.scene.Cam.ZoomAt(m.viewportW()/2, m.viewportH()/2, keyZoomStep)
		m.invalidate()
	case "-":
		m.scene.Cam.ZoomAt(m.viewportW()/2, m.viewportH()/2, 1/keyZoomStep)
		m.invalidate()
	case "left", "h":
		m.scene.Cam.Pan(keyPanStep, 0)
		m.invalidate()
	case "right", "l":
		m.scene.Cam.Pan(-keyPanStep, 0)
		m.invalidate()
	case "up", "k":
		m.scene.Cam.Pan(0, keyPanStep)
		m.invalidate()
	case "down", "j":
		m.scene.Cam.Pan(0, -keyPanStep)
		m.invalidate()
	case "]":
		m.scene.Params.MaxDepth++
		m.fit()
		m.invalidate()
	case "[":
		if m.scene.Params.MaxDepth > 0 {
			m.scene.Params.MaxDepth--
			m.fit()
			m.invalidate()
		}
	case ".":
		m.scene.Params.MinValue += m.scene.MaxValue() / 20
		if m.scene.Params.MinValue > m.scene.MaxValue() {
			m.scene.Params.MinValue = m.scene.MaxValue()
		}
		m.fit()
		m.invalidate()
	case ",":
		m.scene.Params.MinValue -= m.scene.MaxValue() / 20
		if m.scene.Params.MinValue < 0 {
			m.scene.Params.MinValue = 0
		}
		m.fit()
		m.invalidate()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.scene.Cam.ZoomAt(float64(msg.X), float64(msg.Y), camera.WheelFactor(-120))
		m.suppressUntil = m.now().Add(clickSuppressWindow)
		m.invalidate()

	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		m.scene.Cam.ZoomAt(float64(msg.X), float64(msg.Y), camera.WheelFactor(120))
		m.suppressUntil = m.now().Add(clickSuppressWindow)
		m.invalidate()

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.dragging = true
		m.dragMoved = 0
		m.lastX, m.lastY = msg.X, msg.Y

	case msg.Action == tea.MouseActionMotion && m.dragging:
		dx, dy := msg.X-m.lastX, msg.Y-m.lastY
		m.dragMoved += abs(dx) + abs(dy)
		m.lastX, m.lastY = msg.X, msg.Y
		m.scene.Cam.Pan(float64(dx), float64(dy))
		m.invalidate()

	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		if m.dragMoved > dragThresholdCells {
			m.suppressUntil = m.now().Add(clickSuppressWindow)
			return
		}
		m.click(msg.X, msg.Y)
	}
}

// click toggles collapse on the hit node, unless a just-ended gesture
// suppressed it.
func (m *Model) click(x, y int) {
	if m.now().Before(m.suppressUntil) {
		m.suppressUntil = time.Time{} // consumed
		return
	}
	n := m.scene.HitTest(float64(x), float64(y))
	if n == nil || !n.HasChildren {
		return
	}
	m.scene.ToggleCollapse(n.ID)
	m.invalidate()
}

// applyConfig merges a live-reloaded config: a generation change rebuilds the
// scene and re-fits, a pure view change just refilters.
func (m *Model) applyConfig(cfg config.Config) {
	regen := cfg.Gen != m.scene.Spec
	m.scene.Params = cfg.View
	if regen {
		if err := m.scene.Regenerate(cfg.Gen); err != nil {
			return
		}
		m.highValue = analysis.HighPerformerThreshold(m.scene.Nodes, analysis.HighPerformerPercentile)
	}
	if m.scene.Params.MinValue > m.scene.MaxValue() {
		m.scene.Params.MinValue = m.scene.MaxValue()
	}
	m.fit()
	m.invalidate()
}

func (m *Model) stopSearch() {
	m.searching = false
	m.search.Blur()
}

func (m *Model) fit() {
	m.scene.FitToContent(m.viewportW(), m.viewportH(), 2)
}

func (m *Model) viewportW() float64 { w, _ := m.canvas.Size(); return w }
func (m *Model) viewportH() float64 { _, h := m.canvas.Size(); return h }

// invalidate requests a coalesced redraw, or draws synchronously when no
// scheduler is attached.
func (m *Model) invalidate() {
	if m.sched != nil {
		m.sched.Request()
		return
	}
	m.drawFrame()
}

func (m *Model) drawFrame() {
	m.frame = render.DrawFrame(m.canvas, m.scene, render.Options{HighValueThreshold: m.highValue})
	m.sampler.Record(m.frame, m.now())
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "loading scene..."
	}
	if m.showHelp {
		return m.help
	}
	return m.canvas.Render() + "\n" + m.statusBar() + "\n" + m.footer()
}

// Scene exposes the underlying scene, mainly for the robot output path and
// tests.
func (m *Model) Scene() *scene.Scene {
	return m.scene
}

func statsTick() tea.Cmd {
	return tea.Tick(render.DefaultSampleInterval, func(t time.Time) tea.Msg {
		return statsTickMsg(t)
	})
}

func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-w.Changed()
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

// ensure the canvas satisfies the renderer's contract.
var _ render.Surface = (*cellCanvas)(nil)
