package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		kind Kind
		num  float64
	}{
		{"", Missing, 0},
		{"   ", Missing, 0},
		{"42", Number, 42},
		{" 3.5 ", Number, 3.5},
		{"-1e3", Number, -1000},
		{"inf", Number, math.Inf(1)},
		{"nan", Text, 0},
		{"abc", Text, 0},
		{"12%", Text, 0},
	}
	for _, c := range cases {
		v := Parse(c.raw)
		assert.Equal(t, c.kind, v.Kind, "raw %q", c.raw)
		assert.Equal(t, c.raw, v.Raw)
		if c.kind == Number {
			assert.Equal(t, c.num, v.Num, "raw %q", c.raw)
		}
	}
}

func TestNewNormalizesRows(t *testing.T) {
	tbl := New("t.csv", []string{"\ufeffid", " name "}, [][]string{
		{"1"},
		{"2", "b", "extra"},
	})
	require.Equal(t, []string{"id", "name"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"1", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"2", "b"}, tbl.Rows[1])

	assert.True(t, tbl.Has("name"))
	assert.False(t, tbl.Has("missing"))
	assert.Equal(t, "", tbl.Cell(0, "missing"))
	assert.Equal(t, "b", tbl.Cell(1, "name"))
}

func TestValuesParsesColumnOnce(t *testing.T) {
	tbl := New("t", []string{"x"}, [][]string{{"1"}, {""}, {"x"}})
	vals, err := tbl.Values("x")
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, Number, vals[0].Kind)
	assert.True(t, vals[1].IsMissing())
	assert.Equal(t, Text, vals[2].Kind)

	_, err = tbl.Values("nope")
	assert.Error(t, err)
}
