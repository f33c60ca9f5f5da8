// Package iotable reads delimited text files into tables.
//
// Tab files are split on every tab without quoting rules. Comma files follow
// RFC 4180 quoting, leniently. Both may be gzipped. Empty fields become
// nulls. Fields with invalid UTF-8 are repaired with the replacement
// character.
package iotable

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gncurie/internal/iofs"
	"github.com/gnames/gncurie/pkg/plan"
	"github.com/gnames/gncurie/pkg/tabular"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const bom = "\ufeff"

// Reader loads delimited inputs.
type Reader struct {
	strict bool
}

// New creates a Reader. With strict set, a row that is too short to hold
// the needed columns is an error instead of being skipped.
func New(strict bool) *Reader {
	return &Reader{strict: strict}
}

// Result is a loaded table with counters of repaired problems.
type Result struct {
	Table *tabular.Table
	// Skipped counts rows too short for the needed columns.
	Skipped int
	// Replaced counts rows that had invalid UTF-8.
	Replaced int
}

// Read opens path and decodes it according to in.
func (r *Reader) Read(path string, in plan.Input) (*Result, error) {
	f, err := iofs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := r.decode(f, path, in)
	if err != nil {
		return nil, err
	}
	slog.Info("Input loaded",
		"path", path,
		"rows", res.Table.Len(),
		"skipped", res.Skipped,
		"replaced", res.Replaced,
	)
	return res, nil
}

// Decode reads a delimited stream. It is Read without opening a file.
func (r *Reader) Decode(rd io.Reader, in plan.Input) (*Result, error) {
	return r.decode(rd, "input", in)
}

type recordReader interface {
	Read() ([]string, error)
}

func (r *Reader) decode(rd io.Reader, name string, in plan.Input) (*Result, error) {
	var rr recordReader
	switch in.Format {
	case plan.FormatTSV, plan.FormatPositional:
		rr = &tsvReader{br: bufio.NewReaderSize(rd, 1<<20)}
	case plan.FormatCSV:
		cr := csv.NewReader(rd)
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
		rr = cr
	default:
		return nil, UnknownFormatError(in.Format)
	}

	d := decoder{
		Reader: r,
		name:   name,
		rr:     rr,
		utf8:   unicode.UTF8.NewDecoder(),
	}
	return d.run(in)
}

type decoder struct {
	*Reader
	name string
	rr   recordReader
	utf8 *encoding.Decoder
	res  Result
}

func (d *decoder) run(in plan.Input) (*Result, error) {
	cols := in.Columns
	if in.Format != plan.FormatPositional {
		header, err := d.next()
		if err == io.EOF {
			return nil, ReadInputError(d.name, errors.New("no header line"))
		}
		if err != nil {
			return nil, ReadInputError(d.name, err)
		}
		header[0] = strings.TrimPrefix(header[0], bom)
		cols = header
	}
	if missing := absent(cols, in.Select); len(missing) > 0 {
		return nil, tabular.SchemaError(missing, cols)
	}
	width := len(cols)
	need := requiredWidth(cols, in.Select)

	var rows []tabular.Row
	for i := 1; ; i++ {
		fields, err := d.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadInputError(d.name, err)
		}

		if len(fields) < need {
			if d.strict {
				return nil, MalformedRowError(d.name, i, len(fields), need)
			}
			d.res.Skipped++
			slog.Debug("Skipping short row",
				"input", d.name, "row", i, "fields", len(fields), "need", need)
			continue
		}

		row := make(tabular.Row, width)
		for j := range row {
			if j >= len(fields) || fields[j] == "" {
				row[j] = tabular.Null()
				continue
			}
			row[j] = tabular.String(fields[j])
		}
		rows = append(rows, row)
	}

	t, err := tabular.New(cols, rows)
	if err != nil {
		return nil, err
	}
	d.res.Table = t
	return &d.res, nil
}

// next returns the following record with invalid UTF-8 repaired.
func (d *decoder) next() ([]string, error) {
	fields, err := d.rr.Read()
	if err != nil {
		return nil, err
	}
	var replaced bool
	for i, v := range fields {
		if utf8.ValidString(v) {
			continue
		}
		fixed, err := d.utf8.String(v)
		if err != nil {
			fixed = strings.ToValidUTF8(v, "\uFFFD")
		}
		fields[i] = fixed
		replaced = true
	}
	if replaced {
		d.res.Replaced++
	}
	return fields, nil
}

// absent returns selected columns that the input does not have.
func absent(cols, sel []string) []string {
	var res []string
	for _, v := range sel {
		if !slices.Contains(cols, v) {
			res = append(res, v)
		}
	}
	return res
}

// requiredWidth is the number of fields a row needs so every selected
// column can be read.
func requiredWidth(cols, sel []string) int {
	if len(sel) == 0 {
		return len(cols)
	}
	var res int
	for _, v := range sel {
		if i := slices.Index(cols, v); i+1 > res {
			res = i + 1
		}
	}
	return res
}

// tsvReader splits lines on tabs. Blank lines are ignored.
type tsvReader struct {
	br *bufio.Reader
}

func (t *tsvReader) Read() ([]string, error) {
	for {
		line, err := t.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			return nil, io.EOF
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err == io.EOF {
				return nil, io.EOF
			}
			continue
		}
		return strings.Split(line, "\t"), nil
	}
}
