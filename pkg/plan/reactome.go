package plan

import "github.com/gnames/gncurie/pkg/tabular"

func init() {
	register(Reactome)
}

// Reactome converts the Reactome events hierarchy. Nested events are
// labelled as well as top level pathways.
func Reactome() Plan {
	return Plan{
		Name:  "reactome",
		Short: "Labels from Reactome events hierarchy JSON",
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "Reactome eventsHierarchy JSON file",
				Format: FormatReactome,
			},
		},
		Steps: []tabular.Op{
			tabular.DeriveCURIE("stId", "stId", "REACT"),
			tabular.Sprintf("label", "%s (%s)", "name", "species"),
		},
		Outputs: []Output{
			{
				Flag:    "labels-output",
				Usage:   "path for id and label TSV",
				Columns: []string{"stId", "label"},
			},
		},
	}
}
