package plan

import "github.com/gnames/gncurie/pkg/tabular"

func init() {
	register(SMPDB)
}

// SMPDB converts the SMPDB pathways CSV.
func SMPDB() Plan {
	return Plan{
		Name:  "smpdb",
		Short: "Labels from SMPDB pathways CSV",
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "smpdb_pathways.csv file",
				Format: FormatCSV,
				Select: []string{"SMPDB ID", "Name"},
			},
		},
		Steps: []tabular.Op{
			tabular.DeriveCURIE("SMPDB ID", "SMPDB ID", "SMPDB"),
		},
		Outputs: []Output{
			{
				Flag:    "labels-output",
				Usage:   "path for id and label TSV",
				Columns: []string{"SMPDB ID", "Name"},
			},
		},
	}
}
