package analysis

import (
	"fmt"

	"github.com/KaramelBytes/tabstat/internal/table"
)

// Report is the full result of describing one table.
type Report struct {
	Name    string
	Engine  string
	Rows    int
	Columns []string
	Classification
	TopK      int
	Overall   []FeatureSummary
	TopValues []CategoryCount
	Level1    *Grouping
	Level2    *Grouping
	Warnings  []string
}

// Describe classifies the table once and computes the overall numeric summary,
// the categorical top values and both grouped summaries. Grouping columns are
// validated before any computation.
func Describe(tbl *table.Table, opt Options) (*Report, error) {
	opt = opt.withDefaults()
	if err := checkColumns(tbl, "level-1", opt.Level1); err != nil {
		return nil, err
	}
	if err := checkColumns(tbl, "level-2", opt.Level2); err != nil {
		return nil, err
	}
	eng, err := EngineByName(opt.Engine)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Name:           tbl.Name,
		Engine:         eng.Name(),
		Rows:           tbl.Len(),
		Columns:        tbl.Columns,
		Classification: Classify(tbl, opt.NumericThreshold),
		TopK:           opt.TopK,
	}
	if rep.Rows == 0 {
		rep.Warnings = append(rep.Warnings, "input has no data rows; all columns treated as categorical")
	}

	nc, err := parseNumeric(tbl, rep.Numeric)
	if err != nil {
		return nil, err
	}
	for i, col := range nc.names {
		s, ok, err := Summarize(eng, nc.vals[i])
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", col, err)
		}
		missing := 0
		for _, v := range nc.vals[i] {
			if v.Kind != table.Number {
				missing++
			}
		}
		rep.Overall = append(rep.Overall, FeatureSummary{Feature: col, NumericSummary: s, OK: ok, Missing: missing})
	}

	rep.TopValues = TopValues(tbl, rep.Categorical, opt.TopK, opt.CardinalityThreshold)

	if rep.Level1, err = groupBy(tbl, opt.Level1, nc, eng); err != nil {
		return nil, fmt.Errorf("level-1 grouping: %w", err)
	}
	if rep.Level2, err = groupBy(tbl, opt.Level2, nc, eng); err != nil {
		return nil, fmt.Errorf("level-2 grouping: %w", err)
	}
	return rep, nil
}

// Tables returns the result tables in output order: overall numeric,
// top values, level-1 groups, level-2 groups.
func (r *Report) Tables() []*ResultTable {
	out := []*ResultTable{
		OverallNumericTable(r.Overall),
		TopValuesTable(r.TopK, r.TopValues),
	}
	if r.Level1 != nil {
		out = append(out, GroupedTable(r.Level1))
	}
	if r.Level2 != nil {
		out = append(out, GroupedTable(r.Level2))
	}
	return out
}
