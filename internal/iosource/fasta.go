package iosource

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/gnames/gncurie/internal/iotable"
	"github.com/gnames/gncurie/pkg/tabular"
)

var errFASTAHeader = errors.New("expected >db|accession|name")

// fasta reads UniProt header lines such as
// ">sp|P12345|AATM_RABIT Aspartate aminotransferase OS=Oryctolagus cuniculus".
// The name is the entry name and description up to " OS=".
func (l *Loader) fasta(path string, r io.Reader, tag string) (*iotable.Result, error) {
	var rows []tabular.Row
	var skipped int
	which := str(tag, tag != "")

	br := bufio.NewReaderSize(r, 1<<20)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, ReadInputError(path, err)
		}
		if strings.HasPrefix(line, ">") {
			line = strings.TrimRight(line, "\r\n")
			parts := strings.SplitN(line[1:], "|", 3)
			if len(parts) < 3 || parts[1] == "" {
				if l.strict {
					return nil, MalformedRecordError(path, line, errFASTAHeader)
				}
				skipped++
				slog.Debug("Skipping FASTA header", "input", path, "line", line)
			} else {
				name, _, _ := strings.Cut(parts[2], " OS=")
				rows = append(rows, tabular.Row{
					tabular.String(parts[1]),
					tabular.String(name),
					which,
				})
			}
		}
		if err == io.EOF {
			break
		}
	}

	return result([]string{"acc", "name", "which"}, rows, skipped)
}
