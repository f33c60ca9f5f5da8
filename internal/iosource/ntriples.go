package iosource

import (
	"io"
	"log/slog"

	"github.com/gnames/gncurie/internal/iotable"
	"github.com/gnames/gncurie/pkg/tabular"
	"gonum.org/v1/gonum/graph/formats/rdf"
)

const rdfsLabel = "<http://www.w3.org/2000/01/rdf-schema#label>"

// nTriples keeps rdfs:label statements. The subject is the bare IRI and the
// label is the literal text without quotes or language tag.
func (l *Loader) nTriples(path string, r io.Reader) (*iotable.Result, error) {
	var rows []tabular.Row
	var skipped int

	dec := rdf.NewDecoder(r)
	for {
		s, err := dec.Unmarshal()
		if err == io.EOF {
			break
		}
		if err != nil {
			if l.strict {
				return nil, MalformedRecordError(path, "statement", err)
			}
			skipped++
			slog.Debug("Skipping statement", "input", path, "error", err)
			continue
		}
		if s.Predicate.Value != rdfsLabel {
			continue
		}

		subj, _, kind, err := s.Subject.Parts()
		if err != nil || kind != rdf.IRI {
			skipped++
			continue
		}
		label, _, kind, err := s.Object.Parts()
		if err != nil || kind != rdf.Literal {
			skipped++
			continue
		}
		rows = append(rows, tabular.Row{
			tabular.String(subj),
			tabular.String(label),
		})
	}

	return result([]string{"subject", "label"}, rows, skipped)
}
