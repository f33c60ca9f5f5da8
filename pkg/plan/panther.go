package plan

import "github.com/gnames/gncurie/pkg/tabular"

func init() {
	register(PantherPathway)
	register(PantherFamily)
}

// PantherPathway converts the headerless PANTHER SequenceAssociationPathway
// file. Column I is the pathway accession, column II its name.
func PantherPathway() Plan {
	return Plan{
		Name:  "pantherpathway",
		Short: "Labels from PANTHER pathway associations",
		Inputs: []Input{
			{
				Flag:    "input",
				Usage:   "PANTHER SequenceAssociationPathway file",
				Format:  FormatPositional,
				Columns: positional(11),
				Select:  []string{"I", "II"},
			},
		},
		Steps: []tabular.Op{
			tabular.DeriveCURIE("I", "I", "PANTHER.PATHWAY"),
			tabular.Unique("I", "II"),
		},
		Outputs: []Output{
			{
				Flag:    "labels-output",
				Usage:   "path for id and label TSV",
				Columns: []string{"I", "II"},
			},
		},
	}
}

// PantherFamily converts the headerless PANTHER classification file.
// Column IV holds a subfamily such as PTHR10000:SF1, V the family name and
// VI the subfamily name. Each family and subfamily is labelled once.
func PantherFamily() Plan {
	return Plan{
		Name:  "pantherfamily",
		Short: "Labels for PANTHER families and subfamilies",
		Inputs: []Input{
			{
				Flag:    "input",
				Usage:   "PANTHER HMM classifications file",
				Format:  FormatPositional,
				Columns: positional(6),
				Select:  []string{"IV", "V", "VI"},
			},
		},
		Steps: []tabular.Op{
			tabular.Map("IV", "family", beforeColon),
			tabular.Melt([]string{"id", "name"},
				[]string{"family", "V"},
				[]string{"IV", "VI"},
			),
			tabular.DropNull("id"),
			tabular.DeriveCURIE("id", "id", "PANTHER.FAMILY"),
			tabular.Unique("id"),
		},
		Outputs: []Output{
			{
				Flag:    "labels-output",
				Usage:   "path for id and label TSV",
				Columns: []string{"id", "name"},
			},
		},
	}
}
