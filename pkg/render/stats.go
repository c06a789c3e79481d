package render

import "time"

// DefaultSampleInterval is how often the sampler publishes a fresh snapshot
// for the surrounding UI.
const DefaultSampleInterval = 250 * time.Millisecond

// Sample is the throttled, UI-facing view of recent frames.
type Sample struct {
	FPS      float64
	Nodes    int
	Edges    int
	Clusters int
	LOD      bool
}

// Sampler accumulates per-frame stats and publishes an aggregate at a
// throttled cadence, so the status bar updates a few times a second instead
// of flickering at frame rate.
type Sampler struct {
	interval time.Duration
	windowed int
	start    time.Time
	current  Sample
}

// NewSampler creates a sampler with the given publish interval; zero means
// DefaultSampleInterval.
func NewSampler(interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	return &Sampler{interval: interval}
}

// Record folds one frame into the window and publishes a new Sample when the
// interval has elapsed. Draw counts publish from the latest frame; FPS from
// the number of frames in the window.
func (p *Sampler) Record(st FrameStats, now time.Time) {
	if p.start.IsZero() {
		p.start = now
	}
	p.windowed++

	elapsed := now.Sub(p.start)
	if elapsed < p.interval {
		return
	}
	p.current = Sample{
		FPS:      float64(p.windowed) / elapsed.Seconds(),
		Nodes:    st.Nodes,
		Edges:    st.Edges,
		Clusters: st.Clusters,
		LOD:      st.LOD,
	}
	p.windowed = 0
	p.start = now
}

// Current returns the most recently published sample.
func (p *Sampler) Current() Sample {
	return p.current
}
