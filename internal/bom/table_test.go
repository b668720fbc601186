package bom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates an xlsx file with the given rows on the default
// sheet, the first row being the header row.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	path := filepath.Join(t.TempDir(), "bom_data.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadWorkbookCanonicalizesHeaders(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"  SKU ", "BOM Description", "MRP"},
		{"ABC123", "Starter Kit", 499},
	})

	table, err := LoadWorkbook(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"sku", "bom description", "mrp"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "ABC123", table.Rows[0]["sku"])
	assert.Equal(t, "Starter Kit", table.Rows[0]["bom description"])
	assert.Equal(t, "499", table.Rows[0]["mrp"])
}

func TestLoadWorkbookMissingFile(t *testing.T) {
	table, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))

	require.NoError(t, err)
	assert.True(t, table.Empty())
}

func TestLoadWorkbookCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom_data.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := LoadWorkbook(path)

	assert.Error(t, err)
}

func TestLoadWorkbookPadsShortRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"sku", "bom description", "isbn"},
		{"ABC123"},
	})

	table, err := LoadWorkbook(path)

	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "ABC123", table.Rows[0]["sku"])
	assert.Equal(t, "", table.Rows[0]["bom description"])
	assert.Equal(t, "", table.Rows[0]["isbn"])
}

func TestLoadWorkbookHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"sku", "mrp"},
	})

	table, err := LoadWorkbook(path)

	require.NoError(t, err)
	assert.True(t, table.Empty())
	assert.Equal(t, []string{"sku", "mrp"}, table.Headers)
}

func TestCatalogLoadResolvesColumns(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Itemm", "Description"},
		{"A1", "Kit"},
	})

	table, cols, err := NewCatalog(path, DefaultAliases).Load()

	require.NoError(t, err)
	assert.False(t, table.Empty())
	assert.Equal(t, "itemm", cols[FieldSKU])
	assert.Equal(t, "description", cols[FieldDescription])
}

func TestCatalogLoadMissingFile(t *testing.T) {
	catalog := NewCatalog(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultAliases)

	table, cols, err := catalog.Load()

	require.NoError(t, err)
	assert.True(t, table.Empty())
	assert.False(t, cols.Has(FieldSKU))
}
