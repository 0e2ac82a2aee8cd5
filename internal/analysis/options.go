package analysis

const (
	// DefaultNumericThreshold is the share of all rows that must parse as numbers
	// for a column to be numeric. The comparison is inclusive.
	DefaultNumericThreshold = 0.95
	// DefaultCardinalityThreshold marks a categorical column as an identifier when
	// its distinct count exceeds this share of all rows.
	DefaultCardinalityThreshold = 0.95
	// DefaultTopK is how many top values are reported per categorical column.
	DefaultTopK = 5
)

// Options controls a Describe run.
type Options struct {
	// Level1 and Level2 are the grouping columns of the two grouped summaries.
	Level1 []string
	Level2 []string
	// Engine names the numeric summarizer; empty means DefaultEngine.
	Engine string
	// Zero values fall back to the package defaults.
	NumericThreshold     float64
	CardinalityThreshold float64
	TopK                 int
}

// DefaultOptions returns the standard thresholds with the native engine.
func DefaultOptions() Options {
	return Options{
		Engine:               DefaultEngine,
		NumericThreshold:     DefaultNumericThreshold,
		CardinalityThreshold: DefaultCardinalityThreshold,
		TopK:                 DefaultTopK,
	}
}

func (o Options) withDefaults() Options {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.NumericThreshold <= 0 {
		o.NumericThreshold = DefaultNumericThreshold
	}
	if o.CardinalityThreshold <= 0 {
		o.CardinalityThreshold = DefaultCardinalityThreshold
	}
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	return o
}
