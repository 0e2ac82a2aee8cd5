package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StatNames is the fixed order of per-column statistic suffixes.
var StatNames = []string{"count", "mean", "std", "min", "median", "max"}

// Row is a sparse result record keyed by header field. Absent fields serialize as blank.
type Row map[string]string

// ResultTable is a flat table ready for serialization.
type ResultTable struct {
	Name   string
	Header []string
	Rows   []Row
}

// Records returns the rows aligned to the header.
func (t *ResultTable) Records() [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rec := make([]string, len(t.Header))
		for j, h := range t.Header {
			rec[j] = r[h]
		}
		out[i] = rec
	}
	return out
}

// FeatureSummary is the overall summary of one numeric column.
type FeatureSummary struct {
	Feature string
	NumericSummary
	// OK is false when the column had no numbers at all.
	OK      bool
	Missing int
}

// OverallNumericTable builds overall_numeric with one row per numeric column.
func OverallNumericTable(features []FeatureSummary) *ResultTable {
	t := &ResultTable{
		Name:   "overall_numeric",
		Header: []string{"feature", "count", "mean", "std", "min", "median", "max", "missing_count"},
	}
	for _, f := range features {
		row := Row{"feature": f.Feature, "missing_count": strconv.Itoa(f.Missing)}
		if f.OK {
			for k, v := range statFields(f.NumericSummary) {
				row[k] = v
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// TopValuesTable builds overall_top<k>_categorical.
func TopValuesTable(k int, counts []CategoryCount) *ResultTable {
	t := &ResultTable{
		Name:   fmt.Sprintf("overall_top%d_categorical", k),
		Header: []string{"column", "value", "count"},
	}
	for _, c := range counts {
		t.Rows = append(t.Rows, Row{"column": c.Column, "value": c.Value, "count": strconv.Itoa(c.Count)})
	}
	return t
}

// GroupedTableName is by_<cols joined by _>_numeric.
func GroupedTableName(cols []string) string {
	return "by_" + strings.Join(cols, "_") + "_numeric"
}

// GroupedTable builds one row per group: key columns, then {col}_{stat} per numeric column.
func GroupedTable(g *Grouping) *ResultTable {
	header := append([]string{}, g.Columns...)
	for _, c := range g.Numeric {
		for _, s := range StatNames {
			header = append(header, c+"_"+s)
		}
	}
	t := &ResultTable{Name: GroupedTableName(g.Columns), Header: header}
	for _, grp := range g.Groups {
		row := Row{}
		for i, c := range g.Columns {
			row[c] = grp.Key[i]
		}
		for _, c := range g.Numeric {
			s, ok := grp.Stats[c]
			if !ok {
				continue
			}
			for k, v := range statFields(s) {
				row[c+"_"+k] = v
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func statFields(s NumericSummary) map[string]string {
	return map[string]string{
		"count":  strconv.Itoa(s.Count),
		"mean":   FormatFloat(s.Mean),
		"std":    FormatFloat(s.Std),
		"min":    FormatFloat(s.Min),
		"median": FormatFloat(s.Median),
		"max":    FormatFloat(s.Max),
	}
}

// FormatFloat writes the shortest round-trip form, keeping a trailing ".0" on
// integral values and switching to exponent form below 1e-4 or from 1e16 up.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(f)
	if abs >= 1e-4 && abs < 1e16 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}
