package plan

import "github.com/gnames/gncurie/pkg/tabular"

const (
	geneTaxID       = "#tax_id"
	geneID          = "GeneID"
	geneType        = "type_of_gene"
	geneSynonyms    = "Synonyms"
	geneOtherDesign = "Other_designations"
	geneAuthSymbol  = "Symbol_from_nomenclature_authority"
	geneAuthName    = "Full_name_from_nomenclature_authority"
	geneSymbol      = "Symbol"
	geneDescription = "description"

	geneSynonymList = "synonyms"
	geneLabel       = "label"
	genePredicate   = "predicate"
)

// geneTypesSkipped are gene types without useful names.
var geneTypesSkipped = []string{"biological-region", "other", "unknown"}

func init() {
	register(NCBIGene)
}

// NCBIGene converts NCBI gene_info (plain or gzipped) into labels, synonyms,
// taxa and descriptions.
func NCBIGene() Plan {
	return Plan{
		Name:  "ncbigene",
		Short: "Labels, synonyms, taxa and descriptions from NCBI gene_info",
		Long: `Reads NCBI gene_info, drops genes of type biological-region, other
and unknown, and writes four files keyed by NCBIGene CURIEs.

The label is the nomenclature authority symbol, then the plain symbol, then
the first synonym.`,
		Inputs: []Input{
			{
				Flag:   "input",
				Usage:  "gene_info TSV file, may be gzipped",
				Format: FormatTSV,
				Select: []string{
					geneTaxID, geneID, geneType, geneSynonyms, geneOtherDesign,
					geneAuthSymbol, geneAuthName, geneSymbol, geneDescription,
				},
			},
		},
		Steps: []tabular.Op{
			tabular.Filter(geneType, tabular.OneOf(geneTypesSkipped...), tabular.Exclude),
			tabular.DeriveCURIE(geneID, geneID, "NCBIGene"),
			tabular.DeriveCURIE(geneTaxID, geneTaxID, "NCBITaxon"),
			tabular.SplitList(geneSynonymList, ListDelim, Sentinels,
				geneAuthName, geneSynonyms, geneOtherDesign, geneAuthSymbol, geneSymbol,
			),
		},
		Outputs: []Output{
			{
				Flag:  "labels-output",
				Usage: "path for id and label TSV",
				Steps: []tabular.Op{
					tabular.Coalesce(geneLabel, Sentinels,
						geneAuthSymbol, geneSymbol, geneSynonymList,
					),
				},
				Columns: []string{geneID, geneLabel},
			},
			{
				Flag:  "synonyms-output",
				Usage: "path for id, predicate and synonym TSV",
				Steps: []tabular.Op{
					tabular.WithLiteral(genePredicate, OboHasSynonym),
					tabular.Explode(geneSynonymList),
				},
				Columns: []string{geneID, genePredicate, geneSynonymList},
			},
			{
				Flag:    "taxa-output",
				Usage:   "path for id and taxon TSV",
				Columns: []string{geneID, geneTaxID},
			},
			{
				Flag:    "description-output",
				Usage:   "path for id and description TSV",
				Columns: []string{geneID, geneDescription},
			},
		},
	}
}
