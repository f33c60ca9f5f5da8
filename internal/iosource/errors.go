package iosource

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/pkg/errcode"
)

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

func MalformedRecordError(path, record string, err error) error {
	msg := `Malformed record in <em>%s</em>: %s

<em>Hint:</em> set convert.strict to false to skip such records`
	vars := []any{path, record}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: malformed record %q: %w", fn, record, err),
	}
}

func UnknownFormatError(format fmt.Stringer) error {
	msg := "No loader for format <em>%s</em>"
	vars := []any{format.String()}
	return &gn.Error{
		Code: errcode.UnknownFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no loader for %s", format),
	}
}
