package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		2:            "2.0",
		-7:           "-7.0",
		2.5:          "2.5",
		0.1:          "0.1",
		1.0 / 3.0:    "0.3333333333333333",
		0:            "0.0",
		1e-05:        "1e-05",
		0.0001:       "0.0001",
		1234567.0:    "1234567.0",
		1e16:         "1e+16",
		1.5e20:       "1.5e+20",
		math.Inf(1):  "inf",
		math.Inf(-1): "-inf",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatFloat(in), "input %v", in)
	}
	assert.Equal(t, "nan", FormatFloat(math.NaN()))
}

func TestGroupedTableHeaderAndSparseRows(t *testing.T) {
	g := &Grouping{
		Columns: []string{"page_id", "ad_id"},
		Numeric: []string{"spend", "clicks"},
		Groups: []Group{
			{Key: []string{"p1", "a1"}, Size: 2, Stats: map[string]NumericSummary{
				"spend":  {Count: 2, Mean: 1.5, Std: 0.5, Min: 1, Median: 1.5, Max: 2},
				"clicks": {Count: 1, Mean: 3, Min: 3, Median: 3, Max: 3},
			}},
			{Key: []string{"p1", ""}, Size: 1, Stats: map[string]NumericSummary{
				"clicks": {Count: 1, Mean: 4, Min: 4, Median: 4, Max: 4},
			}},
		},
	}
	rt := GroupedTable(g)
	assert.Equal(t, "by_page_id_ad_id_numeric", rt.Name)
	assert.Equal(t, []string{
		"page_id", "ad_id",
		"spend_count", "spend_mean", "spend_std", "spend_min", "spend_median", "spend_max",
		"clicks_count", "clicks_mean", "clicks_std", "clicks_min", "clicks_median", "clicks_max",
	}, rt.Header)

	recs := rt.Records()
	assert.Equal(t, []string{"p1", "a1", "2", "1.5", "0.5", "1.0", "1.5", "2.0", "1", "3.0", "0.0", "3.0", "3.0", "3.0"}, recs[0])
	assert.Equal(t, []string{"p1", "", "", "", "", "", "", "", "1", "4.0", "0.0", "4.0", "4.0", "4.0"}, recs[1])
	_, present := rt.Rows[1]["spend_mean"]
	assert.False(t, present)
}

func TestOverallAndTopValuesTables(t *testing.T) {
	ov := OverallNumericTable([]FeatureSummary{
		{Feature: "x", OK: true, Missing: 1, NumericSummary: NumericSummary{Count: 3, Mean: 2, Std: 0.816496580927726, Min: 1, Median: 2, Max: 3}},
	})
	assert.Equal(t, []string{"feature", "count", "mean", "std", "min", "median", "max", "missing_count"}, ov.Header)
	assert.Equal(t, [][]string{{"x", "3", "2.0", "0.816496580927726", "1.0", "2.0", "3.0", "1"}}, ov.Records())

	tv := TopValuesTable(5, []CategoryCount{{Column: "c", Value: "A", Count: 3}})
	assert.Equal(t, "overall_top5_categorical", tv.Name)
	assert.Equal(t, [][]string{{"c", "A", "3"}}, tv.Records())
}
