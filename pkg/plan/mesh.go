package plan

import (
	"strings"

	"github.com/gnames/gncurie/pkg/tabular"
)

func init() {
	register(MeSH)
}

// MeSH converts rdfs:label triples of the MeSH N-Triples dump. Rows are
// distinct and ordered by term IRI.
func MeSH() Plan {
	return Plan{
		Name:  "mesh",
		Short: "Labels from MeSH N-Triples",
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "mesh.nt file, may be gzipped",
				Format: FormatNTriples,
			},
		},
		Steps: []tabular.Op{
			tabular.Unique("subject", "label"),
			tabular.SortBy("subject"),
			tabular.Map("subject", "id", lastSegment),
			tabular.DeriveCURIE("id", "id", "MESH"),
			tabular.Map("label", "label", strings.TrimSpace),
		},
		Outputs: []Output{
			{
				Flag:    "output",
				Usage:   "path for id and label TSV",
				Columns: []string{"id", "label"},
			},
		},
	}
}
