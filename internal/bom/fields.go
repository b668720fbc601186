package bom

// Logical fields resolved from the spreadsheet header row.
const (
	FieldSKU         = "sku"
	FieldDescription = "bom_desc"
	FieldLine        = "bom_line"
	FieldISBN        = "isbn"
	FieldMRP         = "mrp"
)

// FieldAliases lists the candidate header names for one logical field, in
// the order they are tried.
type FieldAliases struct {
	Field string
	Names []string
}

// DefaultAliases covers the header spellings seen in BOM workbooks so far.
var DefaultAliases = []FieldAliases{
	{Field: FieldSKU, Names: []string{"sku", "item", "itemcode"}},
	{Field: FieldDescription, Names: []string{"bom description", "bomdesc", "description"}},
	{Field: FieldLine, Names: []string{"bom line description", "bomline", "line description"}},
	{Field: FieldISBN, Names: []string{"isbn"}},
	{Field: FieldMRP, Names: []string{"mrp"}},
}
