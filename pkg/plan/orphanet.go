package plan

import "github.com/gnames/gncurie/pkg/tabular"

func init() {
	register(Orphanet)
}

// Orphanet converts the Orphanet nomenclature pack. The preferred name of a
// disorder is repeated as its first exact synonym.
func Orphanet() Plan {
	return Plan{
		Name:  "orphanet",
		Short: "Labels and synonyms from Orphanet nomenclature pack",
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "Orphanet_Nomenclature_Pack_en.zip file",
				Format: FormatOrphanet,
			},
		},
		Steps: []tabular.Op{
			tabular.DeriveCURIE("OrphaCode", "id", "orphanet"),
		},
		Outputs: []Output{
			{
				Flag:    "labels-output",
				Usage:   "path for id and label TSV",
				Columns: []string{"id", "Name"},
			},
			{
				Flag:  "synonyms-output",
				Usage: "path for id, predicate and synonym TSV",
				Steps: []tabular.Op{
					tabular.WithLiteral("predicate", OIOHasExactSynonym),
					tabular.Melt([]string{"pred", "synonym"},
						[]string{"predicate", "Name"},
						[]string{"predicate", "Synonym"},
					),
					tabular.Explode("synonym"),
				},
				Columns: []string{"id", "pred", "synonym"},
			},
		},
	}
}
