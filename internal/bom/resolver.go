package bom

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// similarityCutoff is the minimum sequence ratio for a header to count as a
// match. Headers scoring below it are ignored entirely.
const similarityCutoff = 0.6

// ColumnMap maps a logical field name to the canonical header carrying it.
type ColumnMap map[string]string

// Has reports whether the logical field was resolved.
func (m ColumnMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// ResolveColumns matches the canonical header row against the alias table.
// For each field the candidate names are tried in listed order and the first
// name with any qualifying header wins; later candidates are not consulted
// even if they would score higher. Fields with no qualifying header are
// absent from the map, which is not an error by itself.
func ResolveColumns(headers []string, aliases []FieldAliases) ColumnMap {
	cols := make(ColumnMap)
	for _, fa := range aliases {
		for _, name := range fa.Names {
			if header, ok := closestHeader(headers, name); ok {
				cols[fa.Field] = header
				break
			}
		}
	}
	return cols
}

// closestHeader returns the highest-ratio header at or above the cutoff.
// Ties keep the earliest header in sheet order.
func closestHeader(headers []string, name string) (string, bool) {
	best := ""
	bestRatio := 0.0
	found := false
	for _, header := range headers {
		if header == "" {
			continue
		}
		if r := similarity(header, name); r >= similarityCutoff && r > bestRatio {
			best = header
			bestRatio = r
			found = true
		}
	}
	return best, found
}

// similarity is the difflib sequence ratio over characters.
func similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
