// Package analysis computes summary statistics over a generated scene: the
// value-distribution percentiles that drive high-performer highlighting and
// the aggregate shape data surfaced to robot consumers.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Dicklesworthstone/hiviz/pkg/model"
)

// HighPerformerPercentile is the default cut for the highlight ring: nodes at
// or above this value percentile draw with an accent.
const HighPerformerPercentile = 0.90

// Summary is the aggregate view of one generation, stable for a given spec.
type Summary struct {
	NodeCount  int            `json:"node_count"`
	MaxDepth   int            `json:"max_depth"`
	DepthSizes []int          `json:"depth_sizes"`
	Levels     map[string]int `json:"levels"`

	ValueMean float64 `json:"value_mean"`
	ValueMax  float64 `json:"value_max"`
	ValueP50  float64 `json:"value_p50"`
	ValueP90  float64 `json:"value_p90"`
	ValueP99  float64 `json:"value_p99"`
}

// Summarize computes a Summary over the node set. An empty set yields the
// zero Summary.
func Summarize(nodes []model.Node) Summary {
	s := Summary{Levels: make(map[string]int)}
	if len(nodes) == 0 {
		return s
	}

	s.NodeCount = len(nodes)
	values := make([]float64, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		if n.Depth > s.MaxDepth {
			s.MaxDepth = n.Depth
		}
		s.Levels[string(n.Level)]++
		values = append(values, n.Value)
		if n.Value > s.ValueMax {
			s.ValueMax = n.Value
		}
	}

	s.DepthSizes = make([]int, s.MaxDepth+1)
	for i := range nodes {
		s.DepthSizes[nodes[i].Depth]++
	}

	sort.Float64s(values)
	s.ValueMean = stat.Mean(values, nil)
	s.ValueP50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	s.ValueP90 = stat.Quantile(0.90, stat.Empirical, values, nil)
	s.ValueP99 = stat.Quantile(0.99, stat.Empirical, values, nil)
	return s
}

// HighPerformerThreshold returns the value at the given percentile of the
// node values. Nodes at or above it are the scene's high performers. Returns
// 0 for an empty set.
func HighPerformerThreshold(nodes []model.Node, percentile float64) float64 {
	if len(nodes) == 0 {
		return 0
	}
	values := make([]float64, len(nodes))
	for i := range nodes {
		values[i] = nodes[i].Value
	}
	sort.Float64s(values)
	return stat.Quantile(percentile, stat.Empirical, values, nil)
}
