package iobiomart

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/pkg/errcode"
)

func RequestError(url string, err error) error {
	msg := "Cannot reach BioMart at <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BioMartRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: request to %s failed: %w", fn, url, err),
	}
}

func ResponseError(dataset, reason string) error {
	msg := "BioMart returned an unusable answer for <em>%s</em>: %s"
	vars := []any{dataset, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BioMartResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad response for %s: %s", fn, dataset, reason),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot save BioMart data to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BioMartWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}
