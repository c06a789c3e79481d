package ui

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# hiviz

Navigate a generated hierarchy on a pannable, zoomable canvas.

## Mouse

| Gesture | Effect |
|---|---|
| drag | pan the view |
| wheel | zoom, anchored at the pointer |
| click a node | collapse / expand its subtree |

## Keys

| Key | Effect |
|---|---|
| arrows / hjkl | pan |
| + / - | zoom at the viewport center |
| f | fit all visible nodes |
| / | search by name or id, enter jumps to the first match |
| [ / ] | lower / raise the depth limit |
| , / . | lower / raise the value threshold |
| e | toggle edges |
| t | toggle labels |
| o | toggle LOD clustering |
| x | expand everything |
| r | regenerate with a fresh seed |
| q | quit |

Zoomed far out, depth-1 subtrees merge into cluster bubbles sized by member
count. Nodes ringed in yellow sit in the top value decile.

Press any key to close this help.
`

// renderHelp pre-renders the help overlay once at startup; a glamour render
// is far too slow to run per frame.
func renderHelp() string {
	out, err := glamour.Render(helpMarkdown, "dark")
	if err != nil {
		return helpMarkdown
	}
	return out
}
