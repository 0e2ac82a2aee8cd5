package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"note"}))
	require.NoError(t, f.SetSheetRow("Data", "A1", &[]interface{}{"group", "score"}))
	require.NoError(t, f.SetSheetRow("Data", "A2", &[]interface{}{"A", 10}))
	require.NoError(t, f.SetSheetRow("Data", "A3", &[]interface{}{"B", 12.5}))
	p := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(p))
	return p
}

func TestLoadXLSXByNameAndIndex(t *testing.T) {
	p := writeWorkbook(t)

	byName, err := LoadFile(p, LoadOptions{SheetName: "data"})
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", byName.Name)
	assert.Equal(t, []string{"group", "score"}, byName.Columns)
	require.Equal(t, 2, byName.Len())
	assert.Equal(t, "12.5", byName.Cell(1, "score"))

	byIndex, err := LoadFile(p, LoadOptions{SheetIndex: 2})
	require.NoError(t, err)
	assert.Equal(t, byName.Rows, byIndex.Rows)

	first, err := LoadFile(p, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"note"}, first.Columns)
}

func TestLoadXLSXUnknownSheet(t *testing.T) {
	p := writeWorkbook(t)
	_, err := LoadFile(p, LoadOptions{SheetName: "Summary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available sheets: Sheet1, Data")

	_, err = LoadFile(p, LoadOptions{SheetIndex: 9})
	assert.Error(t, err)
}
