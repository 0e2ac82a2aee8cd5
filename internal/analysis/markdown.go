package analysis

import (
	"fmt"
	"sort"
	"strings"
)

const (
	mdMaxGroups  = 20
	mdMaxMetrics = 6
)

// Markdown renders a compact run summary to accompany the CSV tables.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d (numeric %d, categorical %d)\n", len(r.Columns), len(r.Numeric), len(r.Categorical)))
	if r.Engine != "" {
		b.WriteString(fmt.Sprintf("Engine: %s\n", r.Engine))
	}

	b.WriteString("\n[SCHEMA]\n")
	overall := map[string]FeatureSummary{}
	for _, f := range r.Overall {
		overall[f.Feature] = f
	}
	for _, c := range r.Columns {
		f, numeric := overall[c]
		if !numeric {
			b.WriteString(fmt.Sprintf("- %s: categorical\n", safeName(c)))
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: numeric (count %d, missing %d)", safeName(c), f.Count, f.Missing))
		if f.OK {
			b.WriteString(fmt.Sprintf(": min %.4g, median %.4g, max %.4g, mean %.4g, std %.4g", f.Min, f.Median, f.Max, f.Mean, f.Std))
		}
		b.WriteString("\n")
	}

	if len(r.TopValues) > 0 {
		b.WriteString("\n[TOP VALUES]\n")
		var col string
		for _, tv := range r.TopValues {
			if tv.Column != col {
				if col != "" {
					b.WriteString("\n")
				}
				col = tv.Column
				b.WriteString(fmt.Sprintf("- %s: ", safeName(col)))
			} else {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s(%d)", safeVal(tv.Value), tv.Count))
		}
		b.WriteString("\n")
	}

	for _, g := range []*Grouping{r.Level1, r.Level2} {
		if g == nil {
			continue
		}
		writeGrouping(&b, g)
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// writeGrouping lists the largest groups first, ties by label.
func writeGrouping(b *strings.Builder, g *Grouping) {
	b.WriteString(fmt.Sprintf("\n[GROUP-BY %s] %d groups\n", strings.Join(g.Columns, " × "), len(g.Groups)))
	groups := make([]Group, len(g.Groups))
	copy(groups, g.Groups)
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Size == groups[j].Size {
			return groups[i].Label(g.Columns) < groups[j].Label(g.Columns)
		}
		return groups[i].Size > groups[j].Size
	})
	if len(groups) > mdMaxGroups {
		groups = groups[:mdMaxGroups]
	}
	for _, grp := range groups {
		b.WriteString(fmt.Sprintf("- %s (n=%d)\n", safeVal(grp.Label(g.Columns)), grp.Size))
		shown := 0
		for _, c := range g.Numeric {
			if shown == mdMaxMetrics {
				break
			}
			s, ok := grp.Stats[c]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("  • %s: mean %.4g (min %.4g, max %.4g)\n", c, s.Mean, s.Min, s.Max))
			shown++
		}
	}
	if len(g.Groups) > mdMaxGroups {
		b.WriteString(fmt.Sprintf("- … %d more groups\n", len(g.Groups)-mdMaxGroups))
	}
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string {
	if s == "" {
		return "(blank)"
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
