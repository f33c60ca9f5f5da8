package iobiomart

import (
	"encoding/xml"
	"slices"
)

// usableAttributes are gene attributes requested from every dataset that
// provides them.
var usableAttributes = []string{
	"chromosome_name",
	"description",
	"ensembl_gene_id",
	"ensembl_peptide_id",
	"entrezgene_id",
	"external_gene_name",
	"external_gene_source",
	"external_synonym",
	"flybase_gene_id",
	"gene_biotype",
	"mgi_id",
	"rgd_id",
	"sgd_gene",
	"source",
	"wormbase_gene",
	"zfin_id_id",
}

// skippedDatasets time out or break the TSV formatter.
var skippedDatasets = []string{
	"aocellaris_gene_ensembl",
	"charengus_gene_ensembl",
	"elucius_gene_ensembl",
	"hgfemale_gene_ensembl",
	"omykiss_gene_ensembl",
	"otshawytscha_gene_ensembl",
}

type query struct {
	XMLName              xml.Name     `xml:"Query"`
	VirtualSchemaName    string       `xml:"virtualSchemaName,attr"`
	Formatter            string       `xml:"formatter,attr"`
	Header               string       `xml:"header,attr"`
	DatasetConfigVersion string       `xml:"datasetConfigVersion,attr"`
	Dataset              queryDataset `xml:"Dataset"`
}

type queryDataset struct {
	Name       string      `xml:"name,attr"`
	Interface  string      `xml:"interface,attr"`
	Attributes []queryAttr `xml:"Attribute"`
}

type queryAttr struct {
	Name string `xml:"name,attr"`
}

// buildQuery returns the XML document that asks BioMart for a TSV with a
// header line and the given attributes of a dataset.
func buildQuery(dataset string, attrs []string) (string, error) {
	q := query{
		VirtualSchemaName:    "default",
		Formatter:            "TSV",
		Header:               "1",
		DatasetConfigVersion: "0.6",
		Dataset: queryDataset{
			Name:      dataset,
			Interface: "default",
		},
	}
	for _, v := range attrs {
		q.Dataset.Attributes = append(q.Dataset.Attributes, queryAttr{Name: v})
	}

	res, err := xml.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(res), nil
}

// usable keeps attributes that are in the usable set, sorted.
func usable(attrs []string) []string {
	var res []string
	for _, v := range attrs {
		if slices.Contains(usableAttributes, v) && !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	slices.Sort(res)
	return res
}
