package plan

import "github.com/gnames/gncurie/pkg/tabular"

func init() {
	register(HGNC)
}

// HGNC converts the HGNC complete set JSON. The approved name is an exact
// synonym, alias symbols and alias names are related synonyms.
func HGNC() Plan {
	return Plan{
		Name:  "hgnc",
		Short: "Labels and synonyms from HGNC complete set JSON",
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "hgnc_complete_set.json file",
				Format: FormatHGNC,
			},
		},
		Outputs: []Output{
			{
				Flag:    "labels-output",
				Usage:   "path for id and label TSV",
				Columns: []string{"hgnc_id", "symbol"},
			},
			{
				Flag:  "synonyms-output",
				Usage: "path for id, predicate and synonym TSV",
				Steps: []tabular.Op{
					tabular.WithLiteral("exact", OboHasExactSynonym),
					tabular.WithLiteral("related", OboHasRelatedSynonym),
					tabular.Melt([]string{"predicate", "synonym"},
						[]string{"exact", "name"},
						[]string{"related", "alias_symbol"},
						[]string{"related", "alias_name"},
					),
					tabular.Explode("synonym"),
				},
				Columns: []string{"hgnc_id", "predicate", "synonym"},
			},
		},
	}
}
