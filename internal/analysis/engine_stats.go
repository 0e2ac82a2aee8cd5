package analysis

import (
	"github.com/montanaflynn/stats"
)

// statsEngine delegates to github.com/montanaflynn/stats.
type statsEngine struct{}

func (statsEngine) Name() string { return "stats" }

func (statsEngine) Summarize(xs []float64) (NumericSummary, error) {
	data := stats.Float64Data(xs)
	var s NumericSummary
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.Std, err = stats.StandardDeviationPopulation(data); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	return s, nil
}
