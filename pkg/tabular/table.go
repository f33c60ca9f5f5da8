// Package tabular implements the normalization engine shared by all
// converters: an in-memory table of nullable string cells and a set of
// operations (projection, filtering, CURIE derivation, coalescing, list
// splitting, fan-out and de-duplication) that turn a source table into the
// rows of an output file.
//
// Tables are immutable. Every operation returns a new Table and never
// modifies cells of its receiver, so one loaded table can feed several
// outputs concurrently.
package tabular

import (
	"slices"
	"strings"
)

// ListSeparator joins list cells when they are rendered as text.
const ListSeparator = "|"

// Cell is a single table value. A Cell is either null, a string, or a list
// of strings produced by splitting a multi-valued field.
type Cell struct {
	str    string
	list   []string
	isList bool
	valid  bool
}

// Null returns an absent value.
func Null() Cell {
	return Cell{}
}

// String returns a non-null scalar value.
func String(s string) Cell {
	return Cell{str: s, valid: true}
}

// List returns a multi-valued cell. The slice is copied.
func List(vals []string) Cell {
	return Cell{list: slices.Clone(vals), isList: true, valid: true}
}

// IsNull is true for absent values.
func (c Cell) IsNull() bool {
	return !c.valid
}

// IsList is true for cells created by List.
func (c Cell) IsList() bool {
	return c.isList
}

// Str returns the scalar value, or the rendered list for list cells.
// Null renders as an empty string.
func (c Cell) Str() string {
	switch {
	case !c.valid:
		return ""
	case c.isList:
		return strings.Join(c.list, ListSeparator)
	default:
		return c.str
	}
}

// Values returns elements of a list cell, a one-element slice for a
// scalar, and nil for null.
func (c Cell) Values() []string {
	switch {
	case !c.valid:
		return nil
	case c.isList:
		return slices.Clone(c.list)
	default:
		return []string{c.str}
	}
}

// Row holds cells in the column order of its table.
type Row []Cell

// Table is an ordered sequence of rows sharing one set of columns.
type Table struct {
	cols  []string
	index map[string]int
	rows  []Row
}

// New creates a table. Every row must have exactly one cell per column.
func New(cols []string, rows []Row) (*Table, error) {
	index := make(map[string]int, len(cols))
	for i, v := range cols {
		if _, ok := index[v]; ok {
			return nil, DuplicateColumnError(v)
		}
		index[v] = i
	}
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, RowWidthError(i, len(row), len(cols))
		}
	}
	res := &Table{
		cols:  slices.Clone(cols),
		index: index,
		rows:  rows,
	}
	return res, nil
}

// FromStrings is a convenience constructor. Empty strings become nulls.
func FromStrings(cols []string, data [][]string) (*Table, error) {
	rows := make([]Row, 0, len(data))
	for _, rec := range data {
		row := make(Row, len(rec))
		for i, v := range rec {
			if v == "" {
				row[i] = Null()
				continue
			}
			row[i] = String(v)
		}
		rows = append(rows, row)
	}
	return New(cols, rows)
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	return slices.Clone(t.cols)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Has reports whether the table contains a column.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Cell returns the value at row i of a column.
func (t *Table) Cell(i int, col string) (Cell, bool) {
	idx, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return Null(), false
	}
	return t.rows[i][idx], true
}

// Row returns a copy of the row at index i.
func (t *Table) Row(i int) Row {
	return slices.Clone(t.rows[i])
}

// Records renders every row as text, nulls become empty strings.
func (t *Table) Records() [][]string {
	res := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rec := make([]string, len(row))
		for j, c := range row {
			rec[j] = c.Str()
		}
		res[i] = rec
	}
	return res
}

// Column returns the rendered values of one column.
func (t *Table) Column(col string) ([]string, error) {
	idx, ok := t.index[col]
	if !ok {
		return nil, SchemaError([]string{col}, t.cols)
	}
	res := make([]string, len(t.rows))
	for i, row := range t.rows {
		res[i] = row[idx].Str()
	}
	return res, nil
}

func (t *Table) require(cols ...string) error {
	var missing []string
	for _, v := range cols {
		if !t.Has(v) {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return SchemaError(missing, t.cols)
	}
	return nil
}

// withColumn computes a column for every row. An existing column is
// overwritten in place, a new one is appended.
func (t *Table) withColumn(name string, fn func(Row) Cell) *Table {
	cols := t.cols
	idx, exists := t.index[name]
	if !exists {
		cols = append(slices.Clone(t.cols), name)
		idx = len(t.cols)
	}

	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		nr := make(Row, len(cols))
		copy(nr, row)
		nr[idx] = fn(row)
		rows[i] = nr
	}

	return build(cols, rows)
}

// build assembles a table from columns known to be unique.
func build(cols []string, rows []Row) *Table {
	index := make(map[string]int, len(cols))
	for i, v := range cols {
		index[v] = i
	}
	return &Table{cols: cols, index: index, rows: rows}
}

// derive returns a table with the same columns and new rows.
func (t *Table) derive(rows []Row) *Table {
	return &Table{cols: t.cols, index: t.index, rows: rows}
}
