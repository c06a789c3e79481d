package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/hiviz/pkg/model"
	"github.com/Dicklesworthstone/hiviz/pkg/scene"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	sc, err := scene.New(model.GenSpec{Total: 50, MaxFanout: 4, Seed: 5})
	if err != nil {
		t.Fatalf("scene.New() error: %v", err)
	}
	m := NewModel(sc, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 26})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestWindowSize_InitializesAndDraws(t *testing.T) {
	m := newTestModel(t)
	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	if m.frame.Nodes == 0 && m.frame.Clusters == 0 {
		t.Error("first frame drew nothing")
	}
	if !strings.Contains(m.View(), "fps") {
		t.Error("view has no status bar")
	}
}

func TestWheelZoom_AnchoredAndSuppressing(t *testing.T) {
	m := newTestModel(t)
	cam := m.scene.Cam
	before := cam.Scale
	wx, wy := cam.ScreenToWorld(40, 12)

	m.Update(tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})

	if cam.Scale <= before {
		t.Errorf("scale = %v after wheel up, want > %v", cam.Scale, before)
	}
	ax, ay := cam.ScreenToWorld(40, 12)
	if dx, dy := ax-wx, ay-wy; dx*dx+dy*dy > 1e-9 {
		t.Errorf("anchor drifted by (%v, %v)", dx, dy)
	}
	if m.suppressUntil.IsZero() {
		t.Error("wheel gesture did not arm click suppression")
	}
}

func TestDrag_PansImmediately(t *testing.T) {
	m := newTestModel(t)
	cam := m.scene.Cam
	tx, ty := cam.TranslateX, cam.TranslateY

	m.Update(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 15, Y: 12, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	if cam.TranslateX != tx+5 || cam.TranslateY != ty+2 {
		t.Errorf("translation = (%v, %v), want (%v, %v)", cam.TranslateX, cam.TranslateY, tx+5, ty+2)
	}

	m.Update(tea.MouseMsg{X: 15, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.suppressUntil.IsZero() {
		t.Error("drag release did not arm click suppression")
	}
}

func TestClick_TogglesCollapse(t *testing.T) {
	m := newTestModel(t)
	root := m.scene.Index.Root
	sx, sy := m.scene.Cam.WorldToScreen(root.X, root.Y)
	x, y := int(sx), int(sy)

	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if !m.scene.IsCollapsed(root.ID) {
		t.Fatal("click on the root did not collapse it")
	}

	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.scene.IsCollapsed(root.ID) {
		t.Fatal("second click did not expand the root")
	}
}

func TestClick_SuppressedAfterGesture(t *testing.T) {
	m := newTestModel(t)
	root := m.scene.Index.Root
	sx, sy := m.scene.Cam.WorldToScreen(root.X, root.Y)
	x, y := int(sx), int(sy)

	base := time.Now()
	m.now = func() time.Time { return base }
	m.suppressUntil = base.Add(clickSuppressWindow)

	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if m.scene.IsCollapsed(root.ID) {
		t.Error("suppressed click still toggled collapse")
	}
	if !m.suppressUntil.IsZero() {
		t.Error("suppression flag not cleared after consumption")
	}

	// With the flag consumed the next click goes through.
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !m.scene.IsCollapsed(root.ID) {
		t.Error("click after suppression consumption did not toggle collapse")
	}
}

func TestClick_SuppressionExpiresOnItsOwn(t *testing.T) {
	m := newTestModel(t)
	root := m.scene.Index.Root
	sx, sy := m.scene.Cam.WorldToScreen(root.X, root.Y)
	x, y := int(sx), int(sy)

	base := time.Now()
	m.suppressUntil = base.Add(clickSuppressWindow)
	m.now = func() time.Time { return base.Add(2 * clickSuppressWindow) }

	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if !m.scene.IsCollapsed(root.ID) {
		t.Error("click after the suppression window expired was still swallowed")
	}
}

func TestKeys_Toggles(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("e"))
	if m.scene.Params.ShowEdges {
		t.Error("'e' did not toggle edges off")
	}
	m.Update(keyMsg("t"))
	if m.scene.Params.ShowLabels {
		t.Error("'t' did not toggle labels off")
	}
	m.Update(keyMsg("o"))
	if m.scene.Params.LODEnabled {
		t.Error("'o' did not toggle LOD off")
	}

	depth := m.scene.Params.MaxDepth
	m.Update(keyMsg("["))
	if m.scene.Params.MaxDepth != depth-1 {
		t.Errorf("'[' set depth %d, want %d", m.scene.Params.MaxDepth, depth-1)
	}
	m.Update(keyMsg("]"))
	if m.scene.Params.MaxDepth != depth {
		t.Errorf("']' set depth %d, want %d", m.scene.Params.MaxDepth, depth)
	}

	m.Update(keyMsg("."))
	if m.scene.Params.MinValue <= 0 {
		t.Error("'.' did not raise the value threshold")
	}
	m.Update(keyMsg(","))
	if m.scene.Params.MinValue != 0 {
		t.Errorf("',' left threshold at %v, want 0", m.scene.Params.MinValue)
	}
}

func TestKeys_FilterChangeRefits(t *testing.T) {
	m := newTestModel(t)
	fitted := *m.scene.Cam

	// Pan far off the content, then change the depth limit. The filter
	// change re-frames the visible set, which here is unchanged, so the
	// camera lands back on the fitted view.
	for i := 0; i < 20; i++ {
		m.Update(keyMsg("h"))
	}
	if *m.scene.Cam == fitted {
		t.Fatal("panning did not move the camera")
	}

	m.Update(keyMsg("]"))
	if *m.scene.Cam != fitted {
		t.Errorf("camera = %+v after depth change, want refitted %+v", *m.scene.Cam, fitted)
	}

	for i := 0; i < 20; i++ {
		m.Update(keyMsg("h"))
	}
	m.Update(keyMsg(","))
	if *m.scene.Cam != fitted {
		t.Errorf("camera = %+v after value change, want refitted %+v", *m.scene.Cam, fitted)
	}
}

func TestKeys_SearchFlow(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("/"))
	if !m.searching {
		t.Fatal("'/' did not open search")
	}

	for _, r := range "node-3" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(keyMsg("enter"))

	if m.searching {
		t.Error("enter did not close search")
	}
	n := m.scene.Index.ByID[3]
	sx, sy := m.scene.Cam.WorldToScreen(n.X, n.Y)
	w, h := m.canvas.Size()
	if sx != w/2 || sy != h/4 {
		t.Errorf("match at (%v, %v), want viewport anchor (%v, %v)", sx, sy, w/2, h/4)
	}
}

func TestKeys_SearchEscCancels(t *testing.T) {
	m := newTestModel(t)
	before := *m.scene.Cam

	m.Update(keyMsg("/"))
	m.Update(keyMsg("esc"))
	if m.searching {
		t.Error("esc did not cancel search")
	}
	if *m.scene.Cam != before {
		t.Error("canceled search moved the camera")
	}
}

func TestKeys_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("'q' returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("'q' did not quit")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyMsg("?"))
	if !m.showHelp {
		t.Fatal("'?' did not open help")
	}
	if !strings.Contains(m.View(), "hiviz") {
		t.Error("help overlay missing title")
	}
	m.Update(keyMsg("x"))
	if m.showHelp {
		t.Error("keypress did not close help")
	}
}
