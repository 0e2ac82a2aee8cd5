package analysis

import (
	"github.com/KaramelBytes/tabstat/internal/table"
)

// Classification partitions the header into numeric and categorical columns,
// both in original column order.
type Classification struct {
	Numeric     []string
	Categorical []string
}

// IsNumeric reports whether col was classified numeric.
func (c Classification) IsNumeric(col string) bool {
	for _, n := range c.Numeric {
		if n == col {
			return true
		}
	}
	return false
}

// Classify marks a column numeric when the count of its non-blank values that
// parse as numbers is at least threshold × total rows. Blank cells count against
// the column. A table with no rows is entirely categorical.
func Classify(tbl *table.Table, threshold float64) Classification {
	var c Classification
	total := tbl.Len()
	for j, col := range tbl.Columns {
		if total == 0 {
			c.Categorical = append(c.Categorical, col)
			continue
		}
		convertible := 0
		for _, row := range tbl.Rows {
			if table.Parse(row[j]).Kind == table.Number {
				convertible++
			}
		}
		if float64(convertible) >= threshold*float64(total) {
			c.Numeric = append(c.Numeric, col)
		} else {
			c.Categorical = append(c.Categorical, col)
		}
	}
	return c
}
