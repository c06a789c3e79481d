package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/Dicklesworthstone/hiviz/pkg/analysis"
	"github.com/Dicklesworthstone/hiviz/pkg/config"
	"github.com/Dicklesworthstone/hiviz/pkg/export"
	"github.com/Dicklesworthstone/hiviz/pkg/render"
	"github.com/Dicklesworthstone/hiviz/pkg/scene"
	"github.com/Dicklesworthstone/hiviz/pkg/ui"
	"github.com/Dicklesworthstone/hiviz/pkg/version"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Load generation and view settings from a YAML file (live-reloaded in the TUI)")
	nodes := flag.Int("nodes", 0, "Number of nodes to generate (overrides config)")
	fanout := flag.Int("fanout", 0, "Soft cap on children per node (overrides config)")
	seed := flag.Uint64("seed", 0, "Generation seed (overrides config)")
	exportPNG := flag.String("export-png", "", "Render one frame to a PNG file and exit")
	exportSVG := flag.String("export-svg", "", "Render one frame to an SVG file and exit")
	width := flag.Int("width", 1600, "Export viewport width in pixels")
	height := flag.Int("height", 1000, "Export viewport height in pixels")
	robotStats := flag.Bool("robot-stats", false, "Output generation statistics as JSON for AI agents")
	robotHelp := flag.Bool("robot-help", false, "Show AI agent help")
	flag.Parse()

	if *help {
		fmt.Println("Usage: hv [options]")
		fmt.Println("\nAn interactive viewer for generated hierarchies.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *robotHelp {
		fmt.Println("hv AI Agent Interface")
		fmt.Println("=====================")
		fmt.Println("Headless entry points for inspecting a generated hierarchy without a TTY.")
		fmt.Println("")
		fmt.Println("Commands:")
		fmt.Println("  --robot-stats")
		fmt.Println("      Outputs a JSON object describing the generated scene.")
		fmt.Println("      Key fields:")
		fmt.Println("      - spec: The generation parameters (total, max_fanout, seed)")
		fmt.Println("      - stats: Node count, depth histogram, level counts, value percentiles")
		fmt.Println("      - high_value_threshold: The p90 value cut used for highlighting")
		fmt.Println("      - cluster_count: LOD clusters over a fitted default viewport")
		fmt.Println("      Output is deterministic for a given spec.")
		fmt.Println("")
		fmt.Println("  --export-png FILE / --export-svg FILE")
		fmt.Println("      Renders one fitted frame to an image and exits.")
		fmt.Println("      Use --width and --height to set the viewport.")
		fmt.Println("")
		fmt.Println("  --nodes N --fanout N --seed N")
		fmt.Println("      Override the generation parameters. The same seed always")
		fmt.Println("      produces the same hierarchy.")
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("hv %s\n", version.Version)
		os.Exit(0)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	applyFlagOverrides(&cfg, *nodes, *fanout, *seed)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid settings: %v\n", err)
		os.Exit(1)
	}

	sc, err := scene.New(cfg.Gen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating scene: %v\n", err)
		os.Exit(1)
	}
	sc.Params = cfg.View
	highValue := analysis.HighPerformerThreshold(sc.Nodes, analysis.HighPerformerPercentile)

	if *robotStats {
		if err := writeRobotStats(os.Stdout, sc, highValue); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding stats: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *exportPNG != "" || *exportSVG != "" {
		if *width < 1 || *height < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid export size %dx%d\n", *width, *height)
			os.Exit(1)
		}
		if err := writeSnapshots(sc, *exportPNG, *exportSVG, *width, *height, highValue); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Live config reload only makes sense when a file was given.
	var watcher *config.Watcher
	if *configPath != "" {
		watcher, err = config.NewWatcher(*configPath, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", err)
		}
	}

	if err := ui.Run(sc, watcher); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides layers explicitly set generation flags over the config.
// A zero flag value means "not set"; zero is not a valid value for any of
// these parameters anyway.
func applyFlagOverrides(cfg *config.Config, nodes, fanout int, seed uint64) {
	if nodes > 0 {
		cfg.Gen.Total = nodes
	}
	if fanout > 0 {
		cfg.Gen.MaxFanout = fanout
	}
	if seed != 0 {
		cfg.Gen.Seed = seed
	}
}

// statsViewportW and statsViewportH are the nominal viewport used for the
// cluster count in --robot-stats, matching the default export size.
const (
	statsViewportW = 1600.0
	statsViewportH = 1000.0

	exportPadding = 40.0
)

// writeSnapshots renders one fitted frame to each requested file. A fresh
// scene sits at scale 1 over the layout origin, which would clip most of a
// large hierarchy; exports always frame the visible content first.
func writeSnapshots(sc *scene.Scene, pngPath, svgPath string, w, h int, highValue float64) error {
	sc.FitToContent(float64(w), float64(h), exportPadding)
	opts := render.Options{HighValueThreshold: highValue}
	if pngPath != "" {
		if err := export.SnapshotPNG(sc, pngPath, w, h, opts); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", pngPath)
	}
	if svgPath != "" {
		if err := export.SnapshotSVG(sc, svgPath, w, h, opts); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", svgPath)
	}
	return nil
}

// robotStatsOutput is the --robot-stats JSON shape.
type robotStatsOutput struct {
	GeneratedAt        string           `json:"generated_at"`
	Spec               robotSpec        `json:"spec"`
	Stats              analysis.Summary `json:"stats"`
	HighValueThreshold float64          `json:"high_value_threshold"`
	ClusterCount       int              `json:"cluster_count"`
}

type robotSpec struct {
	Total     int    `json:"total"`
	MaxFanout int    `json:"max_fanout"`
	Seed      uint64 `json:"seed"`
}

func writeRobotStats(w *os.File, sc *scene.Scene, highValue float64) error {
	output := buildRobotStats(sc, highValue)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildRobotStats(sc *scene.Scene, highValue float64) robotStatsOutput {
	spec := sc.Spec
	sc.FitToContent(statsViewportW, statsViewportH, exportPadding)
	return robotStatsOutput{
		GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
		Spec:               robotSpec{Total: spec.Total, MaxFanout: spec.MaxFanout, Seed: spec.Seed},
		Stats:              analysis.Summarize(sc.Nodes),
		HighValueThreshold: highValue,
		ClusterCount:       len(sc.Clusters(statsViewportW, statsViewportH)),
	}
}
