package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kitTable() (*Table, ColumnMap) {
	table := &Table{
		Headers: []string{"sku", "bom description", "bom line description", "isbn", "mrp"},
		Rows: []Row{
			{"sku": "ABC123", "bom description": "Starter Kit", "bom line description": "Widget A", "isbn": "978-0-1", "mrp": "499"},
			{"sku": "ABC123", "bom description": "Starter Kit", "bom line description": "Widget B", "isbn": "978-0-1", "mrp": "499"},
			{"sku": "XYZ789", "bom description": "Spare Pack", "bom line description": "Bolt", "isbn": "978-0-2", "mrp": "99"},
		},
	}
	return table, ResolveColumns(table.Headers, DefaultAliases)
}

func TestFindMatchesCaseInsensitive(t *testing.T) {
	table, cols := kitTable()

	p, err := Find(table, cols, "abc123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", p.SKU)
	assert.Equal(t, "Starter Kit", p.Description)
	assert.Equal(t, "978-0-1", p.ISBN)
	assert.Equal(t, "499", p.MRP)
	assert.Equal(t, 2, p.Quantity)
	assert.Equal(t, []string{"Widget A", "Widget B"}, p.Items)
}

func TestFindQuantityCountsRows(t *testing.T) {
	table, cols := kitTable()
	table.Rows = append(table.Rows, Row{"sku": "abc123", "bom description": "Starter Kit", "bom line description": "Widget C", "isbn": "978-0-1", "mrp": "499"})

	p, err := Find(table, cols, "ABC123")

	require.NoError(t, err)
	assert.Equal(t, 3, p.Quantity)
	assert.Len(t, p.Items, 3)
}

func TestFindNotFound(t *testing.T) {
	table, cols := kitTable()

	_, err := Find(table, cols, "GHOST")

	assert.ErrorIs(t, err, ErrSKUNotFound)
}

func TestFindEmptyTable(t *testing.T) {
	_, err := Find(&Table{}, ColumnMap{FieldSKU: "sku"}, "ABC123")

	assert.ErrorIs(t, err, ErrNoSKUColumn)
}

func TestFindNoSKUColumn(t *testing.T) {
	table, _ := kitTable()

	_, err := Find(table, ColumnMap{}, "ABC123")

	assert.ErrorIs(t, err, ErrNoSKUColumn)
}

func TestFindUnresolvedFieldsFallBack(t *testing.T) {
	table := &Table{
		Headers: []string{"sku"},
		Rows:    []Row{{"sku": "ABC123"}},
	}
	cols := ColumnMap{FieldSKU: "sku"}

	p, err := Find(table, cols, "ABC123")

	require.NoError(t, err)
	assert.Equal(t, "N/A", p.Description)
	assert.Equal(t, "N/A", p.ISBN)
	assert.Equal(t, "N/A", p.MRP)
	assert.Nil(t, p.Items)
	assert.Equal(t, 1, p.Quantity)
}

func TestFindNormalizesTableMRP(t *testing.T) {
	table, cols := kitTable()
	table.Rows[0]["mrp"] = "0499.50"
	table.Rows[1]["mrp"] = "0499.50"

	p, err := Find(table, cols, "ABC123")

	require.NoError(t, err)
	assert.Equal(t, "499.5", p.MRP)
}

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"499", "499"},
		{" 499 ", "499"},
		{"0499.50", "499.5"},
		{"N/A", "N/A"},
		{"", ""},
		{"₹499", "₹499"},
		{"499/-", "499/-"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizePrice(tc.in), "input %q", tc.in)
	}
}
