package plan

import "github.com/gnames/gncurie/pkg/tabular"

// UniChemSources maps UniChem source ids that are kept to the prefixes of
// the matching identifier spaces.
var UniChemSources = map[string]string{
	"1":  "CHEMBL.COMPOUND",
	"2":  "DRUGBANK",
	"4":  "GTOPDB",
	"6":  "KEGG.COMPOUND",
	"7":  "CHEBI",
	"14": "UNII",
	"18": "HMDB",
	"22": "PUBCHEM.COMPOUND",
	"34": "DrugCentral",
}

func init() {
	register(UniChem)
}

// UniChem filters the UniChem structure-source table. Only sources from
// UniChemSources with ASSIGNMENT 1 survive. Unlike other outputs the result
// keeps every input column and a header line.
func UniChem() Plan {
	ids := make([]string, 0, len(UniChemSources))
	for k := range UniChemSources {
		ids = append(ids, k)
	}
	return Plan{
		Name:  "unichem",
		Short: "Filter UniChem reference table to known sources",
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "UniChem reference TSV file",
				Format: FormatTSV,
			},
		},
		Steps: []tabular.Op{
			tabular.Filter("SRC_ID", tabular.OneOf(ids...), tabular.Include),
			tabular.Filter("ASSIGNMENT", tabular.Equals("1"), tabular.Include),
		},
		Outputs: []Output{
			{
				Flag:   "output",
				Usage:  "path for filtered TSV with header",
				Header: true,
			},
		},
	}
}
