package analysis

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/tabstat/internal/table"
)

// CategoryCount is one (column, value, count) row of the top values table.
type CategoryCount struct {
	Column string
	Value  string
	Count  int
}

// TopValues reports the k most frequent trimmed values of each categorical
// column, blank included. Columns whose distinct count exceeds
// cardinality × total rows are skipped. Ties keep first-occurrence order.
func TopValues(tbl *table.Table, categorical []string, k int, cardinality float64) []CategoryCount {
	var out []CategoryCount
	total := float64(tbl.Len())
	for _, col := range categorical {
		j := tbl.Index(col)
		if j < 0 {
			continue
		}
		counts := map[string]int{}
		var order []string
		for _, row := range tbl.Rows {
			v := strings.TrimSpace(row[j])
			if _, seen := counts[v]; !seen {
				order = append(order, v)
			}
			counts[v]++
		}
		if float64(len(order)) > cardinality*total {
			continue
		}
		sort.SliceStable(order, func(a, b int) bool {
			return counts[order[a]] > counts[order[b]]
		})
		if len(order) > k {
			order = order[:k]
		}
		for _, v := range order {
			out = append(out, CategoryCount{Column: col, Value: v, Count: counts[v]})
		}
	}
	return out
}
