// Package export writes snapshots of the current view: the same frame the
// interactive renderer draws, rasterized to PNG or streamed as SVG.
package export

import (
	"fmt"
	"os"

	"github.com/Dicklesworthstone/hiviz/pkg/render"
	"github.com/Dicklesworthstone/hiviz/pkg/render/raster"
	svgsurface "github.com/Dicklesworthstone/hiviz/pkg/render/svg"
	"github.com/Dicklesworthstone/hiviz/pkg/scene"
)

// SnapshotPNG renders sc at the scene's current camera into a w×h PNG file.
func SnapshotPNG(sc *scene.Scene, path string, w, h int, opts render.Options) error {
	surf, err := raster.New(w, h)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	render.DrawFrame(surf, sc, opts)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	defer f.Close()

	if err := surf.WritePNG(f); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}

// SnapshotSVG renders sc at the scene's current camera into a w×h SVG file.
func SnapshotSVG(sc *scene.Scene, path string, w, h int, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export svg: %w", err)
	}
	defer f.Close()

	surf := svgsurface.New(f, w, h)
	surf.Start()
	render.DrawFrame(surf, sc, opts)
	surf.End()
	return nil
}
