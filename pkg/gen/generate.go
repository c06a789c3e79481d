package gen

import (
	"fmt"
	"math"

	"github.com/Dicklesworthstone/hiviz/pkg/model"
)

const (
	// parentBias skews parent selection toward earlier-created ids, which
	// keeps the tree shallow near the root and bushy below it. Values > 1
	// prefer smaller ids.
	parentBias = 3.0

	// parentRetries bounds resampling when a candidate parent is already at
	// the fan-out cap. After the last attempt the candidate is accepted
	// anyway: the cap is soft, and occasional overflow is documented
	// behavior that downstream code must tolerate.
	parentRetries = 8

	// valueExp and valueCeiling shape the value distribution: most nodes
	// land near zero with a long tail toward the ceiling, which is what
	// makes percentile-based highlighting meaningful.
	valueExp     = 2.5
	valueCeiling = 1000.0

	// Cumulative level thresholds: 15% S, 25% A, 30% B, remainder C.
	levelCutS = 0.15
	levelCutA = 0.40
	levelCutB = 0.70
)

// Generate builds a rooted tree of exactly spec.Total nodes. Node 1 is the
// root; every later node picks an already-created parent, so ids are
// contiguous 1..Total and every ParentID precedes its node. Depth and
// coordinates are left zero for the layout engine to fill in.
func Generate(spec model.GenSpec) ([]model.Node, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	rng := NewRNG(spec.Seed)
	nodes := make([]model.Node, 0, spec.Total)
	childCount := make([]int, spec.Total+1)

	nodes = append(nodes, model.Node{
		ID:    1,
		Name:  nodeName(1),
		Level: drawLevel(rng),
		Value: drawValue(rng),
	})

	for id := 2; id <= spec.Total; id++ {
		parent := pickParent(rng, len(nodes), spec.MaxFanout, childCount)
		childCount[parent]++

		nodes = append(nodes, model.Node{
			ID:       id,
			Name:     nodeName(id),
			ParentID: parent,
			Level:    drawLevel(rng),
			Value:    drawValue(rng),
		})
	}

	return nodes, nil
}

// pickParent samples a candidate id biased toward earlier nodes and retries a
// bounded number of times when the candidate is already at the fan-out cap.
func pickParent(rng *RNG, count, maxFanout int, childCount []int) int {
	candidate := 1
	for attempt := 0; attempt < parentRetries; attempt++ {
		u := rng.Float64()
		candidate = int(math.Pow(u, parentBias)*float64(count)) + 1
		if candidate < 1 {
			candidate = 1
		}
		if candidate > count {
			candidate = count
		}
		if childCount[candidate] < maxFanout {
			return candidate
		}
	}
	return candidate
}

func drawLevel(rng *RNG) model.Level {
	u := rng.Float64()
	switch {
	case u < levelCutS:
		return model.LevelS
	case u < levelCutA:
		return model.LevelA
	case u < levelCutB:
		return model.LevelB
	default:
		return model.LevelC
	}
}

func drawValue(rng *RNG) float64 {
	return math.Pow(rng.Float64(), valueExp) * valueCeiling
}

func nodeName(id int) string {
	return fmt.Sprintf("node-%d", id)
}
