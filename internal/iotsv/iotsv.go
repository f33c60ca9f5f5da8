// Package iotsv writes tables as tab-separated files.
//
// A file is written next to its destination under a temporary name and
// renamed when complete, so a reader never sees half of a new file and a
// re-run replaces the old one instead of appending to it.
package iotsv

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/gnames/gncurie/pkg/tabular"
	"github.com/spf13/afero"
)

// Writer saves tables to a file system.
type Writer struct {
	fs afero.Fs
}

// New creates a Writer. A nil fs means the operating system file system.
func New(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs}
}

// Write saves t to path, one line per row. Nulls are empty fields and list
// cells are joined with "|". With header set, column names come first.
// It returns the number of rows written.
func (w *Writer) Write(path string, t *tabular.Table, header bool) (int, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+base+".*.tmp")
	if err != nil {
		return 0, CreateOutputError(path, err)
	}
	tmpPath := tmp.Name()
	done := false
	defer func() {
		if !done {
			tmp.Close()
			w.fs.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriterSize(tmp, 1<<20)
	if header {
		if err = writeLine(bw, t.Columns()); err != nil {
			return 0, WriteOutputError(path, err)
		}
	}
	for _, rec := range t.Records() {
		if err = writeLine(bw, rec); err != nil {
			return 0, WriteOutputError(path, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return 0, WriteOutputError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return 0, WriteOutputError(path, err)
	}
	done = true

	// temp files are created private
	if err = w.fs.Chmod(tmpPath, 0644); err != nil {
		w.fs.Remove(tmpPath)
		return 0, WriteOutputError(path, err)
	}
	if err = w.fs.Rename(tmpPath, path); err != nil {
		w.fs.Remove(tmpPath)
		return 0, CreateOutputError(path, err)
	}
	return t.Len(), nil
}

func writeLine(bw *bufio.Writer, fields []string) error {
	if _, err := bw.WriteString(strings.Join(fields, "\t")); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}
