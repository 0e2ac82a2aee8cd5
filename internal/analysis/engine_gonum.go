package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// gonumEngine delegates to gonum's stat and floats packages.
type gonumEngine struct{}

func (gonumEngine) Name() string { return "gonum" }

func (gonumEngine) Summarize(xs []float64) (NumericSummary, error) {
	sorted := sortedCopy(xs)
	s := NumericSummary{
		Mean:   stat.Mean(xs, nil),
		Min:    floats.Min(xs),
		Median: medianSorted(sorted),
		Max:    floats.Max(xs),
	}
	// PopVariance of a single value divides 0 by 0.
	if len(xs) > 1 {
		s.Std = math.Sqrt(stat.PopVariance(xs, nil))
	}
	return s, nil
}
