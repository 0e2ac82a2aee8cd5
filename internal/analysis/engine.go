package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/KaramelBytes/tabstat/internal/table"
)

// DefaultEngine is used when Options.Engine is empty.
const DefaultEngine = "native"

// NumericSummary holds the six descriptors of a numeric sequence.
type NumericSummary struct {
	Count  int
	Mean   float64
	Std    float64 // population standard deviation
	Min    float64
	Median float64
	Max    float64
}

// Engine computes a NumericSummary. Summarize is only called with at least one value.
type Engine interface {
	Name() string
	Summarize(xs []float64) (NumericSummary, error)
}

var engines = map[string]Engine{}

// RegisterEngine makes an engine selectable by name.
func RegisterEngine(e Engine) {
	engines[e.Name()] = e
}

// EngineByName looks up a registered engine.
func EngineByName(name string) (Engine, error) {
	if name == "" {
		name = DefaultEngine
	}
	e, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownEngine, name, EngineNames())
	}
	return e, nil
}

// EngineNames lists registered engines alphabetically.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for n := range engines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Numbers extracts the non-missing numbers. Text values count as missing.
func Numbers(vals []table.Value) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v.Kind == table.Number {
			out = append(out, v.Num)
		}
	}
	return out
}

// Summarize describes the numbers in vals. ok is false when there are none.
func Summarize(e Engine, vals []table.Value) (s NumericSummary, ok bool, err error) {
	return summarizeNumbers(e, Numbers(vals))
}

func summarizeNumbers(e Engine, xs []float64) (NumericSummary, bool, error) {
	if len(xs) == 0 {
		return NumericSummary{}, false, nil
	}
	s, err := e.Summarize(xs)
	if err != nil {
		return NumericSummary{}, false, fmt.Errorf("%s engine: %w", e.Name(), err)
	}
	s.Count = len(xs)
	// Rounding in sum/n can leave the mean just outside the range and a
	// constant sequence with a tiny non-zero spread.
	switch {
	case s.Min == s.Max:
		s.Mean, s.Std = s.Min, 0
	case s.Mean < s.Min:
		s.Mean = s.Min
	case s.Mean > s.Max:
		s.Mean = s.Max
	}
	return s, true, nil
}

// medianSorted expects ascending input with at least one element.
func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func sortedCopy(xs []float64) []float64 {
	cp := make([]float64, len(xs))
	copy(cp, xs)
	sort.Float64s(cp)
	return cp
}

// nativeEngine uses compensated summation and a two-pass variance.
type nativeEngine struct{}

func (nativeEngine) Name() string { return "native" }

func (nativeEngine) Summarize(xs []float64) (NumericSummary, error) {
	n := float64(len(xs))
	mean := neumaierSum(xs) / n
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	sorted := sortedCopy(xs)
	return NumericSummary{
		Mean:   mean,
		Std:    math.Sqrt(sq / n),
		Min:    sorted[0],
		Median: medianSorted(sorted),
		Max:    sorted[len(sorted)-1],
	}, nil
}

func neumaierSum(xs []float64) float64 {
	var sum, comp float64
	for _, x := range xs {
		t := sum + x
		if math.Abs(sum) >= math.Abs(x) {
			comp += (sum - t) + x
		} else {
			comp += (x - t) + sum
		}
		sum = t
	}
	// the compensation term is NaN once the running sum overflows
	if math.IsInf(sum, 0) {
		return sum
	}
	return sum + comp
}

func init() {
	RegisterEngine(nativeEngine{})
	RegisterEngine(statsEngine{})
	RegisterEngine(gonumEngine{})
}
