package bom

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoSKUColumn means the workbook is absent, empty, or its header row
	// has nothing resembling a SKU column.
	ErrNoSKUColumn = errors.New("no sku column")
	// ErrSKUNotFound means no row matched the requested SKU.
	ErrSKUNotFound = errors.New("sku not found")
)

// missingValue stands in for fields whose column was never resolved.
const missingValue = "N/A"

// Product is one label's worth of BOM data: the first matching row's
// descriptive fields plus one contents line per matching row.
type Product struct {
	SKU         string
	Description string
	ISBN        string
	MRP         string
	Items       []string
	Quantity    int
}

// Find returns the product for the given SKU. Matching upper-cases both
// sides and compares the string form of the cell, so numeric SKU cells
// match their decimal spelling.
func Find(table *Table, cols ColumnMap, sku string) (*Product, error) {
	skuCol, ok := cols[FieldSKU]
	if table.Empty() || !ok {
		return nil, ErrNoSKUColumn
	}

	want := strings.ToUpper(sku)
	var matched []Row
	for _, row := range table.Rows {
		if strings.ToUpper(row[skuCol]) == want {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return nil, ErrSKUNotFound
	}

	p := &Product{
		SKU:         sku,
		Description: fieldValue(matched[0], cols, FieldDescription),
		ISBN:        fieldValue(matched[0], cols, FieldISBN),
		MRP:         normalizePrice(fieldValue(matched[0], cols, FieldMRP)),
		Quantity:    len(matched),
	}
	if lineCol, ok := cols[FieldLine]; ok {
		for _, row := range matched {
			p.Items = append(p.Items, row[lineCol])
		}
	}
	return p, nil
}

// fieldValue reads the cell behind a logical field, or "N/A" when the field
// never resolved to a header.
func fieldValue(row Row, cols ColumnMap, field string) string {
	header, ok := cols[field]
	if !ok {
		return missingValue
	}
	return row[header]
}

// normalizePrice canonicalizes numeric price strings ("0499.50" becomes
// "499.5"). Anything that does not parse as a decimal passes through
// untouched, "N/A" included.
func normalizePrice(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return d.String()
}
