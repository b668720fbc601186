package bom

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by canonical header.
type Row map[string]string

// Table holds the BOM workbook contents. It is rebuilt from disk on every
// request and never cached.
type Table struct {
	Headers []string
	Rows    []Row
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Catalog loads BOM data from a workbook path and resolves its columns.
type Catalog struct {
	path    string
	aliases []FieldAliases
}

func NewCatalog(path string, aliases []FieldAliases) *Catalog {
	return &Catalog{path: path, aliases: aliases}
}

// Load reads the first sheet of the workbook and resolves the column map.
// A missing file means "no data", not an error; an unreadable file is one.
func (c *Catalog) Load() (*Table, ColumnMap, error) {
	table, err := LoadWorkbook(c.path)
	if err != nil {
		return nil, nil, err
	}
	return table, ResolveColumns(table.Headers, c.aliases), nil
}

// LoadWorkbook reads the first sheet into a Table. Headers are trimmed and
// lower-cased; short rows are padded with empty cells and cells beyond the
// header row are dropped.
func LoadWorkbook(path string) (*Table, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &Table{}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	table := &Table{Headers: headers}
	for _, cells := range rows[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
