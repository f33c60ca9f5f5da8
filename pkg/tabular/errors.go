package tabular

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/pkg/errcode"
)

// SchemaError is returned when columns required by an operation are
// absent. It usually means the source file changed its format.
func SchemaError(missing, available []string) error {
	msg := `Input does not have required columns

<em>Missing:</em> %s
<em>Available:</em> %s

<em>Possible causes:</em>
  - The source changed its file format
  - A wrong file was given to the converter`

	vars := []any{
		strings.Join(missing, ", "),
		strings.Join(available, ", "),
	}

	return &gn.Error{
		Code: errcode.SchemaMissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing columns: %q", missing),
	}
}

// DuplicateColumnError is returned when a table would contain the same
// column twice.
func DuplicateColumnError(col string) error {
	msg := "Column <em>%s</em> appears more than once"
	vars := []any{col}
	return &gn.Error{
		Code: errcode.SchemaDuplicateColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate column %q", col),
	}
}

// RowWidthError is returned when a row does not match the table columns.
func RowWidthError(row, got, want int) error {
	msg := "Row %d has %d cells, table has %d columns"
	vars := []any{row, got, want}
	return &gn.Error{
		Code: errcode.SchemaMismatchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("row %d: %d cells for %d columns", row, got, want),
	}
}

// ColumnsMismatchError is returned when tables with different columns
// are concatenated.
func ColumnsMismatchError(a, b []string) error {
	msg := `Cannot concatenate tables with different columns

<em>First:</em> %s
<em>Second:</em> %s`
	vars := []any{strings.Join(a, ", "), strings.Join(b, ", ")}
	return &gn.Error{
		Code: errcode.SchemaMismatchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("columns differ: %q vs %q", a, b),
	}
}
