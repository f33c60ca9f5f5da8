package ioconvert

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/pkg/errcode"
)

func InvalidPlanError(err error) error {
	msg := "Converter is misconfigured: %s"
	vars := []any{err.Error()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidPlanError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid plan: %w", fn, err),
	}
}

func MissingPathError(plan, flag string) error {
	msg := "Converter <em>%s</em> needs a path for --%s"
	vars := []any{plan, flag}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingPathError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no path for --%s", fn, flag),
	}
}

func OutputDirError(path string, err error) error {
	msg := "Cannot create output <em>%s</em>, directory does not exist"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no directory for %s: %w", fn, path, err),
	}
}

func CancelledError(err error) error {
	msg := "Conversion cancelled"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cancelled: %w", fn, err),
	}
}

func DuplicatePathError(path, flag1, flag2 string) error {
	msg := "Flags --%s and --%s point to the same file <em>%s</em>"
	vars := []any{flag1, flag2, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DuplicatePathError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: --%s and --%s share %s", fn, flag1, flag2, path),
	}
}
