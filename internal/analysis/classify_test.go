package analysis

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/tabstat/internal/table"
)

func column(name string, vals ...string) *table.Table {
	recs := make([][]string, len(vals))
	for i, v := range vals {
		recs[i] = []string{v}
	}
	return table.New("t", []string{name}, recs)
}

func TestClassifyBlankCountsAgainstNumeric(t *testing.T) {
	// 9 numeric of 10 rows: 9 < 9.5
	vals := []string{""}
	for i := 1; i <= 9; i++ {
		vals = append(vals, strconv.Itoa(i))
	}
	c := Classify(column("x", vals...), DefaultNumericThreshold)
	assert.Empty(t, c.Numeric)
	assert.Equal(t, []string{"x"}, c.Categorical)
}

func TestClassifyInclusiveBoundary(t *testing.T) {
	vals := make([]string, 0, 20)
	for i := 0; i < 19; i++ {
		vals = append(vals, strconv.Itoa(i))
	}
	vals = append(vals, "n/a")
	c := Classify(column("x", vals...), DefaultNumericThreshold)
	assert.Equal(t, []string{"x"}, c.Numeric)
	assert.True(t, c.IsNumeric("x"))
}

func TestClassifyCountsPastFirstFailure(t *testing.T) {
	vals := []string{"oops"}
	for i := 0; i < 99; i++ {
		vals = append(vals, "1.5")
	}
	c := Classify(column("x", vals...), DefaultNumericThreshold)
	assert.Equal(t, []string{"x"}, c.Numeric)
}

func TestClassifyEdgeCases(t *testing.T) {
	allBlank := Classify(column("x", "", " ", ""), DefaultNumericThreshold)
	assert.Equal(t, []string{"x"}, allBlank.Categorical)

	empty := table.New("t", []string{"a", "b"}, nil)
	c := Classify(empty, DefaultNumericThreshold)
	assert.Empty(t, c.Numeric)
	assert.Equal(t, []string{"a", "b"}, c.Categorical)
}

func TestClassifyKeepsColumnOrderAndIsDeterministic(t *testing.T) {
	tbl := table.New("t", []string{"name", "age", "city", "score"}, [][]string{
		{"ann", "31", "oslo", "1.5"},
		{"bob", "28", "rome", "2"},
		{"cy", "40", "oslo", "3"},
	})
	first := Classify(tbl, DefaultNumericThreshold)
	assert.Equal(t, []string{"age", "score"}, first.Numeric)
	assert.Equal(t, []string{"name", "city"}, first.Categorical)
	assert.Equal(t, first, Classify(tbl, DefaultNumericThreshold))
}
