package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f8f8f2")).
			Background(lipgloss.Color("#2a2a3e"))
	statusDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")).
			Background(lipgloss.Color("#2a2a3e"))
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4"))
)

// statusBar is the throttled observable-outputs line: fps, drawn counts,
// camera state and active filters.
func (m *Model) statusBar() string {
	cam := m.scene.Cam

	mode := fmt.Sprintf("%d nodes · %d edges", m.frame.Nodes, m.frame.Edges)
	if m.frame.LOD {
		mode = fmt.Sprintf("%d clusters (LOD)", m.frame.Clusters)
	}

	left := statusStyle.Render(fmt.Sprintf(" %.0f fps │ %s ", m.stats.FPS, mode))
	right := statusDimStyle.Render(fmt.Sprintf(" scale %.2f @ (%.0f, %.0f) │ depth ≤ %d │ value ≥ %.0f │ collapsed %d ",
		cam.Scale, cam.TranslateX, cam.TranslateY,
		m.scene.Params.MaxDepth, m.scene.Params.MinValue, m.scene.CollapsedCount()))

	bar := left + right
	if pad := m.width - lipgloss.Width(bar); pad > 0 {
		bar += statusDimStyle.Render(fmt.Sprintf("%*s", pad, ""))
	}
	return bar
}

func (m *Model) footer() string {
	if m.searching {
		return m.search.View()
	}
	return footerStyle.Render("drag pan · wheel zoom · click collapse · / search · f fit · ? help · q quit")
}
