package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() *Table {
	t := &Table{
		Name:    "expenses",
		Columns: []Column{{Header: "Date"}, {Header: "Description"}, {Header: "Amount", Numeric: true}},
	}
	t.AddRow("2024-04-01", "Shop rent, April", "25000.00")
	t.AddRow("2024-04-02", `Tea "and" snacks`, "120.50")
	t.AddRow("2024-04-03")
	return t
}

func TestAddRowPadsToColumns(t *testing.T) {
	table := sampleTable()
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"2024-04-03", "", ""}, table.Rows[2])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	expected := "Date,Description,Amount\n" +
		"2024-04-01,\"Shop rent, April\",25000.00\n" +
		"2024-04-02,\"Tea \"\"and\"\" snacks\",120.50\n" +
		"2024-04-03,,\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"expenses"}, f.GetSheetList())
	rows, err := f.GetRows("expenses")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, rows[0])
	assert.Equal(t, "Shop rent, April", rows[1][1])

	cellType, err := f.GetCellType("expenses", "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestWriteXLSXTruncatesSheetName(t *testing.T) {
	table := &Table{Name: "a-very-long-dataset-name-for-a-sheet", Columns: []Column{{Header: "X"}}}
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, table))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"a-very-long-dataset-name-for-a-"}, f.GetSheetList())
}
