package plan

import (
	"strings"

	"github.com/gnames/gncurie/pkg/tabular"
)

const doidIRI = "http://purl.obolibrary.org/obo/DOID_"

func init() {
	register(DOID)
}

// DOID converts the Disease Ontology obographs JSON. Deprecated classes
// and nodes from imported ontologies are skipped.
func DOID() Plan {
	return Plan{
		Name:  "doid",
		Short: "Labels and synonyms from Disease Ontology JSON",
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "doid.json obographs file",
				Format: FormatOBOGraph,
			},
		},
		Steps: []tabular.Op{
			tabular.Filter("deprecated", tabular.Equals("true"), tabular.Exclude),
			tabular.Filter("id", tabular.HasPrefix(doidIRI), tabular.Include),
			tabular.Map("id", "id", func(s string) string {
				return strings.TrimPrefix(s, doidIRI)
			}),
			tabular.DeriveCURIE("id", "id", "DOID"),
		},
		Outputs: []Output{
			{
				Flag:    "labels-output",
				Usage:   "path for id and label TSV",
				Steps:   []tabular.Op{tabular.DropNull("lbl")},
				Columns: []string{"id", "lbl"},
			},
			{
				Flag:  "synonyms-output",
				Usage: "path for id, predicate and synonym TSV",
				Steps: []tabular.Op{
					tabular.WithLiteral("predicate", OIOHasExactSynonym),
					tabular.Melt([]string{"pred", "synonym"},
						[]string{"predicate", "lbl"},
						[]string{"predicate", "synonyms"},
					),
					tabular.Explode("synonym"),
				},
				Columns: []string{"id", "pred", "synonym"},
			},
		},
	}
}
