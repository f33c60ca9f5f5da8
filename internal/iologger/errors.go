package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/pkg/errcode"
)

// CreateLogFileError is returned when the "file" log destination cannot be
// opened.
func CreateLogFileError(path string, err error) error {
	msg := "Cannot open log file <em>%s</em>, " +
		"set log destination to stderr or stdout to skip it"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: log file %s: %w", fn, path, err),
	}
}
