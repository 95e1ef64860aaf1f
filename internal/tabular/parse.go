// Package tabular turns delimited text and pre-split grids into header-keyed rows.
package tabular

import "strings"

// Delimiter separates fields on a line. Quoting and escaping are not supported:
// a value containing the delimiter shifts every following field.
const Delimiter = ","

// Row maps a header name to its raw string value.
type Row map[string]string

// Get returns the value for key and whether the key was present in the header.
func (r Row) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Table is a parsed file: the ordered header plus the data rows.
type Table struct {
	Header []string
	Rows   []Row
}

// Parse splits text into rows keyed by the first non-empty line.
// Empty or whitespace-only input yields no rows.
func Parse(text string) []Row {
	return ParseTable(text).Rows
}

// ParseTable is Parse, also returning the header in file order.
// Duplicate header names are kept; the last occurrence wins on lookup.
func ParseTable(text string) Table {
	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		grid = append(grid, strings.Split(line, Delimiter))
	}
	return tableFromGrid(grid)
}

// FromGrid applies the header and row-width rules to cells that were already
// split, e.g. the rows of a spreadsheet. Rows whose cells are all blank are skipped.
func FromGrid(grid [][]string) []Row {
	var kept [][]string
	for _, cells := range grid {
		if blank(cells) {
			continue
		}
		kept = append(kept, cells)
	}
	return tableFromGrid(kept).Rows
}

func tableFromGrid(grid [][]string) Table {
	if len(grid) == 0 {
		return Table{}
	}

	header := make([]string, len(grid[0]))
	for i, name := range grid[0] {
		header[i] = strings.TrimSpace(name)
	}

	rows := make([]Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			// Short rows pad with "", long rows drop the extras.
			var v string
			if i < len(cells) {
				v = strings.TrimSpace(cells[i])
			}
			row[name] = v
		}
		rows = append(rows, row)
	}

	return Table{Header: header, Rows: rows}
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
