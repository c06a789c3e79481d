package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/hiviz/pkg/config"
	"github.com/Dicklesworthstone/hiviz/pkg/render"
	"github.com/Dicklesworthstone/hiviz/pkg/scene"
)

// Run wires the model, the coalescing redraw scheduler and the optional
// config watcher into a Bubble Tea program and blocks until the user quits.
func Run(sc *scene.Scene, watcher *config.Watcher) error {
	m := NewModel(sc, watcher)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// The scheduler fires on its own goroutine; Send is the only safe way
	// back into the event loop.
	sched := render.NewScheduler(render.FrameInterval, func() {
		p.Send(redrawMsg{})
	})
	m.SetScheduler(sched)
	defer sched.Stop()

	if watcher != nil {
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("start config watcher: %w", err)
		}
		defer watcher.Stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
