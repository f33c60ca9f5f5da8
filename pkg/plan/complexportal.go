package plan

import "github.com/gnames/gncurie/pkg/tabular"

const (
	cpxID      = "#Complex ac"
	cpxName    = "Recommended name"
	cpxAliases = "Aliases for complex"
)

func init() {
	register(ComplexPortal)
}

// ComplexPortal converts a ComplexPortal complex TSV. Every alias is
// written once, for the first complex that uses it.
func ComplexPortal() Plan {
	return Plan{
		Name:  "complexportal",
		Short: "Labels and synonyms from a ComplexPortal TSV",
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "ComplexPortal complexes TSV file",
				Format: FormatTSV,
				Select: []string{cpxID, cpxName, cpxAliases},
			},
		},
		Steps: []tabular.Op{
			tabular.DeriveCURIE(cpxID, cpxID, "ComplexPortal"),
		},
		Outputs: []Output{
			{
				Flag:    "labels-output",
				Usage:   "path for id and label TSV",
				Columns: []string{cpxID, cpxName},
			},
			{
				Flag:  "synonyms-output",
				Usage: "path for id and synonym TSV",
				Steps: []tabular.Op{
					tabular.SplitList(cpxAliases, ListDelim, Sentinels, cpxAliases),
					tabular.Explode(cpxAliases),
					tabular.Unique(cpxAliases),
				},
				Columns: []string{cpxID, cpxAliases},
			},
		},
	}
}
