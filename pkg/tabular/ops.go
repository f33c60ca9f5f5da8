package tabular

import (
	"fmt"
	"slices"
	"strings"
)

// Op is one step of a normalization pipeline.
type Op func(*Table) (*Table, error)

// Pipe applies operations in order and stops at the first error.
func Pipe(t *Table, ops ...Op) (*Table, error) {
	var err error
	for _, op := range ops {
		if t, err = op(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Project keeps only the given columns in the given order. All columns are
// checked before any row is touched.
func Project(cols ...string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(cols...); err != nil {
			return nil, err
		}
		seen := make(map[string]struct{}, len(cols))
		for _, v := range cols {
			if _, ok := seen[v]; ok {
				return nil, DuplicateColumnError(v)
			}
			seen[v] = struct{}{}
		}

		idx := make([]int, len(cols))
		for i, v := range cols {
			idx[i] = t.index[v]
		}
		rows := make([]Row, len(t.rows))
		for i, row := range t.rows {
			nr := make(Row, len(idx))
			for j, k := range idx {
				nr[j] = row[k]
			}
			rows[i] = nr
		}
		return build(slices.Clone(cols), rows), nil
	}
}

// Require checks that columns exist without changing the table.
func Require(cols ...string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(cols...); err != nil {
			return nil, err
		}
		return t, nil
	}
}

// Rename changes the name of a column.
func Rename(from, to string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(from); err != nil {
			return nil, err
		}
		if from == to {
			return t, nil
		}
		if t.Has(to) {
			return nil, DuplicateColumnError(to)
		}
		cols := slices.Clone(t.cols)
		cols[t.index[from]] = to
		return build(cols, t.rows), nil
	}
}

// Predicate decides if a non-null value passes a filter.
type Predicate interface {
	Match(string) bool
}

type equals string

func (e equals) Match(s string) bool {
	return string(e) == s
}

// Equals matches one literal value.
func Equals(s string) Predicate {
	return equals(s)
}

type oneOf map[string]struct{}

func (o oneOf) Match(s string) bool {
	_, ok := o[s]
	return ok
}

// OneOf matches any literal of a fixed set, for example a list of
// categories.
func OneOf(vals ...string) Predicate {
	res := make(oneOf, len(vals))
	for _, v := range vals {
		res[v] = struct{}{}
	}
	return res
}

type hasPrefix string

func (h hasPrefix) Match(s string) bool {
	return strings.HasPrefix(s, string(h))
}

// HasPrefix matches values that start with a prefix.
func HasPrefix(p string) Predicate {
	return hasPrefix(p)
}

// FilterMode tells if matching rows are kept or removed.
type FilterMode int

const (
	// Include keeps only matching rows. Null values never match, so rows
	// with null are removed.
	Include FilterMode = iota
	// Exclude removes matching rows. Rows with null are kept.
	Exclude
)

// Filter keeps or drops rows depending on a predicate over one column.
// A list cell matches when any of its elements matches. Surviving rows keep
// their order.
func Filter(col string, p Predicate, mode FilterMode) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(col); err != nil {
			return nil, err
		}
		idx := t.index[col]
		rows := make([]Row, 0, len(t.rows))
		for _, row := range t.rows {
			matched := slices.ContainsFunc(row[idx].Values(), p.Match)
			if matched == (mode == Include) {
				rows = append(rows, row)
			}
		}
		return t.derive(rows), nil
	}
}

// DropNull removes rows where any of the columns is null.
func DropNull(cols ...string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(cols...); err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(t.rows))
	OUTER:
		for _, row := range t.rows {
			for _, v := range cols {
				if row[t.index[v]].IsNull() {
					continue OUTER
				}
			}
			rows = append(rows, row)
		}
		return t.derive(rows), nil
	}
}

// CURIE joins a prefix and a local identifier. An identifier that already
// carries the prefix is returned unchanged.
func CURIE(prefix, local string) string {
	head := prefix + ":"
	if strings.HasPrefix(local, head) {
		return local
	}
	return head + local
}

// DeriveCURIE writes prefix:local into dst for every non-null value of
// src. Nulls stay null, so a bare "PREFIX:" is never produced. dst may be
// the same column as src.
func DeriveCURIE(src, dst, prefix string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(src); err != nil {
			return nil, err
		}
		idx := t.index[src]
		res := t.withColumn(dst, func(row Row) Cell {
			c := row[idx]
			switch {
			case c.IsNull():
				return Null()
			case c.IsList():
				vals := c.Values()
				for i := range vals {
					vals[i] = CURIE(prefix, vals[i])
				}
				return List(vals)
			default:
				return String(CURIE(prefix, c.Str()))
			}
		})
		return res, nil
	}
}

// Coalesce writes into dst the first candidate value that is neither null
// nor one of the sentinels. A list candidate offers its first surviving
// element. When nothing qualifies dst is null.
func Coalesce(dst string, sentinels []string, candidates ...string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(candidates...); err != nil {
			return nil, err
		}
		idx := make([]int, len(candidates))
		for i, v := range candidates {
			idx[i] = t.index[v]
		}
		res := t.withColumn(dst, func(row Row) Cell {
			for _, k := range idx {
				for _, v := range row[k].Values() {
					if !slices.Contains(sentinels, v) {
						return String(v)
					}
				}
			}
			return Null()
		})
		return res, nil
	}
}

// SplitList builds a list column from one or more delimited cells. Values
// are collected from srcs in order, null cells are skipped, and sentinel or
// empty pieces are dropped. The result may be an empty list.
func SplitList(dst, delim string, sentinels []string, srcs ...string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(srcs...); err != nil {
			return nil, err
		}
		idx := make([]int, len(srcs))
		for i, v := range srcs {
			idx[i] = t.index[v]
		}
		res := t.withColumn(dst, func(row Row) Cell {
			var vals []string
			for _, k := range idx {
				for _, v := range row[k].Values() {
					vals = appendSplit(vals, v, delim, sentinels)
				}
			}
			return List(vals)
		})
		return res, nil
	}
}

func appendSplit(vals []string, s, delim string, sentinels []string) []string {
	for part := range strings.SplitSeq(s, delim) {
		if part == "" || slices.Contains(sentinels, part) {
			continue
		}
		vals = append(vals, part)
	}
	return vals
}

// Explode replaces every row with one row per value of a column. Other
// cells are copied. A list with no elements, or a null, drops the row.
func Explode(col string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(col); err != nil {
			return nil, err
		}
		idx := t.index[col]
		rows := make([]Row, 0, len(t.rows))
		for _, row := range t.rows {
			for _, v := range row[idx].Values() {
				nr := slices.Clone(row)
				nr[idx] = String(v)
				rows = append(rows, nr)
			}
		}
		return t.derive(rows), nil
	}
}

// Unique removes rows whose key columns repeat a row seen earlier
// anywhere in the table. The first occurrence wins. Without columns the
// whole row is the key.
func Unique(cols ...string) Op {
	return func(t *Table) (*Table, error) {
		key := cols
		if len(key) == 0 {
			key = t.cols
		}
		if err := t.require(key...); err != nil {
			return nil, err
		}
		idx := make([]int, len(key))
		for i, v := range key {
			idx[i] = t.index[v]
		}

		seen := make(map[string]struct{}, len(t.rows))
		rows := make([]Row, 0, len(t.rows))
		var sb strings.Builder
		for _, row := range t.rows {
			sb.Reset()
			for _, k := range idx {
				c := row[k]
				// null and empty string are different keys
				if c.IsNull() {
					sb.WriteByte(0)
				} else {
					sb.WriteByte(1)
					sb.WriteString(c.Str())
				}
				sb.WriteByte(0)
			}
			k := sb.String()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			rows = append(rows, row)
		}
		return t.derive(rows), nil
	}
}

// WithLiteral sets a column to the same value in every row.
func WithLiteral(dst, val string) Op {
	return func(t *Table) (*Table, error) {
		c := String(val)
		return t.withColumn(dst, func(Row) Cell { return c }), nil
	}
}

// Map derives dst from src with fn. Nulls stay null; list cells are mapped
// element by element.
func Map(src, dst string, fn func(string) string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(src); err != nil {
			return nil, err
		}
		idx := t.index[src]
		res := t.withColumn(dst, func(row Row) Cell {
			c := row[idx]
			switch {
			case c.IsNull():
				return Null()
			case c.IsList():
				vals := c.Values()
				for i := range vals {
					vals[i] = fn(vals[i])
				}
				return List(vals)
			default:
				return String(fn(c.Str()))
			}
		})
		return res, nil
	}
}

// Sprintf formats dst from several columns. If any of them is null the
// result is null.
func Sprintf(dst, format string, srcs ...string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(srcs...); err != nil {
			return nil, err
		}
		idx := make([]int, len(srcs))
		for i, v := range srcs {
			idx[i] = t.index[v]
		}
		res := t.withColumn(dst, func(row Row) Cell {
			args := make([]any, len(idx))
			for i, k := range idx {
				if row[k].IsNull() {
					return Null()
				}
				args[i] = row[k].Str()
			}
			return String(fmt.Sprintf(format, args...))
		})
		return res, nil
	}
}

// Melt unpivots column groups into rows. Every group lists one source
// column per name in into. Columns not used by any group are kept in front,
// followed by into. Each input row yields one row per group, in group
// order.
func Melt(into []string, groups ...[]string) Op {
	return func(t *Table) (*Table, error) {
		used := make(map[string]struct{})
		for _, g := range groups {
			if len(g) != len(into) {
				return nil, ColumnsMismatchError(into, g)
			}
			if err := t.require(g...); err != nil {
				return nil, err
			}
			for _, v := range g {
				used[v] = struct{}{}
			}
		}

		var keep []int
		var cols []string
		for i, v := range t.cols {
			if _, ok := used[v]; !ok {
				keep = append(keep, i)
				cols = append(cols, v)
			}
		}
		for _, v := range into {
			if slices.Contains(cols, v) {
				return nil, DuplicateColumnError(v)
			}
			cols = append(cols, v)
		}

		rows := make([]Row, 0, len(t.rows)*len(groups))
		for _, row := range t.rows {
			for _, g := range groups {
				nr := make(Row, 0, len(cols))
				for _, k := range keep {
					nr = append(nr, row[k])
				}
				for _, v := range g {
					nr = append(nr, row[t.index[v]])
				}
				rows = append(rows, nr)
			}
		}
		return New(cols, rows)
	}
}

// SortBy orders rows by the rendered values of columns. The sort is stable.
func SortBy(cols ...string) Op {
	return func(t *Table) (*Table, error) {
		if err := t.require(cols...); err != nil {
			return nil, err
		}
		rows := slices.Clone(t.rows)
		slices.SortStableFunc(rows, func(a, b Row) int {
			for _, v := range cols {
				k := t.index[v]
				if c := strings.Compare(a[k].Str(), b[k].Str()); c != 0 {
					return c
				}
			}
			return 0
		})
		return t.derive(rows), nil
	}
}

// Concat appends rows of several tables with identical columns.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return New(nil, nil)
	}
	first := tables[0]
	var rows []Row
	for _, t := range tables {
		if !slices.Equal(first.cols, t.cols) {
			return nil, ColumnsMismatchError(first.cols, t.cols)
		}
		rows = append(rows, t.rows...)
	}
	return first.derive(rows), nil
}
