package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/tabstat/internal/table"
)

// Group is one partition of the table. Stats only holds numeric columns that
// had at least one value inside the group.
type Group struct {
	Key   []string
	Size  int
	Stats map[string]NumericSummary
}

// Label renders the key as "col=value | col=value".
func (g Group) Label(cols []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		v := ""
		if i < len(g.Key) {
			v = g.Key[i]
		}
		parts[i] = c + "=" + v
	}
	return strings.Join(parts, " | ")
}

// Grouping is the grouped numeric summary for one set of key columns.
// Groups appear in first-encountered order.
type Grouping struct {
	Columns []string
	Numeric []string
	Groups  []Group
}

// numericColumns caches the parsed values of the numeric columns.
type numericColumns struct {
	names []string
	vals  [][]table.Value
}

func parseNumeric(tbl *table.Table, names []string) (*numericColumns, error) {
	nc := &numericColumns{names: names, vals: make([][]table.Value, len(names))}
	for i, n := range names {
		v, err := tbl.Values(n)
		if err != nil {
			return nil, err
		}
		nc.vals[i] = v
	}
	return nc, nil
}

// GroupBy partitions the table by the exact raw values of keys and summarizes
// each numeric column per group. Blank keys form groups of their own.
func GroupBy(tbl *table.Table, keys []string, numeric []string, e Engine) (*Grouping, error) {
	if err := checkColumns(tbl, "group-by", keys); err != nil {
		return nil, err
	}
	nc, err := parseNumeric(tbl, numeric)
	if err != nil {
		return nil, err
	}
	return groupBy(tbl, keys, nc, e)
}

func groupBy(tbl *table.Table, keys []string, nc *numericColumns, e Engine) (*Grouping, error) {
	idx := make([]int, len(keys))
	for i, k := range keys {
		idx[i] = tbl.Index(k)
	}
	type bucket struct {
		key  []string
		size int
		nums [][]float64
	}
	byKey := map[string]*bucket{}
	var order []*bucket
	for r, row := range tbl.Rows {
		key := make([]string, len(idx))
		for i, j := range idx {
			key[i] = row[j]
		}
		enc := encodeKey(key)
		b := byKey[enc]
		if b == nil {
			b = &bucket{key: key, nums: make([][]float64, len(nc.names))}
			byKey[enc] = b
			order = append(order, b)
		}
		b.size++
		for c := range nc.names {
			if v := nc.vals[c][r]; v.Kind == table.Number {
				b.nums[c] = append(b.nums[c], v.Num)
			}
		}
	}

	g := &Grouping{Columns: keys, Numeric: nc.names, Groups: make([]Group, 0, len(order))}
	for _, b := range order {
		grp := Group{Key: b.key, Size: b.size, Stats: map[string]NumericSummary{}}
		for c, name := range nc.names {
			s, ok, err := summarizeNumbers(e, b.nums[c])
			if err != nil {
				return nil, err
			}
			if ok {
				grp.Stats[name] = s
			}
		}
		g.Groups = append(g.Groups, grp)
	}
	return g, nil
}

// encodeKey length-prefixes each part so distinct tuples never collide.
func encodeKey(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

func checkColumns(tbl *table.Table, level string, cols []string) error {
	if len(cols) == 0 {
		return fmt.Errorf("%s: %w", level, ErrNoGroupingColumns)
	}
	for _, c := range cols {
		if !tbl.Has(c) {
			return &ConfigError{Level: level, Column: c, Available: tbl.Columns}
		}
	}
	return nil
}
