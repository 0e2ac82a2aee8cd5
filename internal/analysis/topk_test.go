package analysis

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/tabstat/internal/table"
)

func TestTopValuesOrdering(t *testing.T) {
	tbl := column("c", "A", "A", "A", "B", "B", "C")
	got := TopValues(tbl, []string{"c"}, DefaultTopK, DefaultCardinalityThreshold)
	assert.Equal(t, []CategoryCount{
		{Column: "c", Value: "A", Count: 3},
		{Column: "c", Value: "B", Count: 2},
		{Column: "c", Value: "C", Count: 1},
	}, got)
}

func TestTopValuesSkipsIdentifierColumns(t *testing.T) {
	vals := make([]string, 100)
	for i := range vals {
		vals[i] = "id-" + strconv.Itoa(i)
	}
	got := TopValues(column("id", vals...), []string{"id"}, DefaultTopK, DefaultCardinalityThreshold)
	assert.Empty(t, got)
}

func TestTopValuesLimitTiesAndBlank(t *testing.T) {
	// Ties keep first-occurrence order; blank is a value of its own.
	tbl := column("c", "z", "", "y", "x", "w", "v", "u", "z", "", " y ", "x", "w", "v", "u", "q", "q")
	got := TopValues(tbl, []string{"c"}, DefaultTopK, DefaultCardinalityThreshold)
	want := []CategoryCount{
		{Column: "c", Value: "z", Count: 2},
		{Column: "c", Value: "", Count: 2},
		{Column: "c", Value: "y", Count: 2},
		{Column: "c", Value: "x", Count: 2},
		{Column: "c", Value: "w", Count: 2},
	}
	assert.Equal(t, want, got)
}

func TestTopValuesColumnOrder(t *testing.T) {
	tbl := table.New("t", []string{"a", "b"}, [][]string{
		{"x", "p"}, {"x", "p"}, {"y", "p"},
	})
	got := TopValues(tbl, []string{"a", "b"}, 1, DefaultCardinalityThreshold)
	assert.Equal(t, []CategoryCount{
		{Column: "a", Value: "x", Count: 2},
		{Column: "b", Value: "p", Count: 3},
	}, got)
}

func TestTopValuesEmptyTable(t *testing.T) {
	tbl := table.New("t", []string{"a"}, nil)
	assert.Empty(t, TopValues(tbl, []string{"a"}, DefaultTopK, DefaultCardinalityThreshold))
}
