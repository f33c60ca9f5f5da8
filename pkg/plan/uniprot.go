package plan

import "github.com/gnames/gncurie/pkg/tabular"

func init() {
	register(UniProt)
}

// UniProt writes labels for Swiss-Prot and TrEMBL entries into one file.
// The label records which of the two sections the entry came from.
func UniProt() Plan {
	return Plan{
		Name:  "uniprot",
		Short: "Labels from UniProt Swiss-Prot and TrEMBL FASTA",
		Inputs: []Input{
			{
				Flag:   "sprot-input",
				Usage:  "uniprot_sprot.fasta file, may be gzipped",
				Format: FormatFASTA,
				Tag:    "sprot",
			},
			{
				Flag:   "trembl-input",
				Usage:  "uniprot_trembl.fasta file, may be gzipped",
				Format: FormatFASTA,
				Tag:    "trembl",
			},
		},
		Steps: []tabular.Op{
			tabular.DeriveCURIE("acc", "acc", "UniProtKB"),
			tabular.Sprintf("label", "%s (%s)", "name", "which"),
		},
		Outputs: []Output{
			{
				Flag:    "output",
				Usage:   "path for id and label TSV",
				Columns: []string{"acc", "label"},
			},
		},
	}
}
