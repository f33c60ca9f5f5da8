// Package iosource loads structured source files (JSON, FASTA, zipped XML
// and N-Triples) into tables, so that they are normalized and written the
// same way as delimited inputs.
//
// Every loader produces fixed columns named after the fields of its
// source.
package iosource

import (
	"io"
	"log/slog"

	"github.com/gnames/gncurie/internal/iofs"
	"github.com/gnames/gncurie/internal/iotable"
	"github.com/gnames/gncurie/pkg/plan"
	"github.com/gnames/gncurie/pkg/tabular"
)

// Loader reads structured inputs.
type Loader struct {
	strict bool
}

// New creates a Loader. With strict set, a malformed record is an error
// instead of being skipped.
func New(strict bool) *Loader {
	return &Loader{strict: strict}
}

// Load reads path according to the input format.
func (l *Loader) Load(path string, in plan.Input) (*iotable.Result, error) {
	var res *iotable.Result
	var err error

	switch in.Format {
	case plan.FormatOrphanet:
		res, err = l.orphanet(path)
	case plan.FormatHGNC, plan.FormatReactome, plan.FormatOBOGraph:
		res, err = l.readWith(path, func(r io.Reader) (*iotable.Result, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, ReadInputError(path, err)
			}
			switch in.Format {
			case plan.FormatHGNC:
				return hgnc(path, data)
			case plan.FormatReactome:
				return reactome(path, data)
			default:
				return oboGraph(path, data)
			}
		})
	case plan.FormatFASTA:
		res, err = l.readWith(path, func(r io.Reader) (*iotable.Result, error) {
			return l.fasta(path, r, in.Tag)
		})
	case plan.FormatNTriples:
		res, err = l.readWith(path, func(r io.Reader) (*iotable.Result, error) {
			return l.nTriples(path, r)
		})
	default:
		return nil, UnknownFormatError(in.Format)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("Input loaded",
		"path", path,
		"format", in.Format.String(),
		"rows", res.Table.Len(),
		"skipped", res.Skipped,
	)
	return res, nil
}

func (l *Loader) readWith(
	path string,
	fn func(io.Reader) (*iotable.Result, error),
) (*iotable.Result, error) {
	f, err := iofs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fn(f)
}

// str converts an optional value into a cell.
func str(s string, ok bool) tabular.Cell {
	if !ok {
		return tabular.Null()
	}
	return tabular.String(s)
}
