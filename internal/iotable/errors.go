package iotable

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/pkg/errcode"
)

func MalformedRowError(path string, row, got, need int) error {
	msg := `Row %d of <em>%s</em> has %d fields, at least %d are required

<em>Hint:</em> set convert.strict to false to skip such rows`
	vars := []any{row, path, got, need}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedRowError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: row %d has %d fields, need %d",
			fn, row, got, need),
	}
}

func ReadInputError(path string, err error) error {
	msg := "Cannot parse <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn, path, err),
	}
}

func UnknownFormatError(format fmt.Stringer) error {
	msg := "Format <em>%s</em> is not delimited text"
	vars := []any{format.String()}
	return &gn.Error{
		Code: errcode.UnknownFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported format %s", format),
	}
}
