package iosource_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/internal/iosource"
	"github.com/gnames/gncurie/pkg/errcode"
	"github.com/gnames/gncurie/pkg/plan"
	"github.com/gnames/gncurie/pkg/tabular"
	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func cell(t *testing.T, tbl *tabular.Table, i int, col string) tabular.Cell {
	c, ok := tbl.Cell(i, col)
	require.True(t, ok, col)
	return c
}

func TestHGNC(t *testing.T) {
	data := `{"response": {"numFound": 2, "docs": [
  {"hgnc_id": "HGNC:5", "symbol": "A1BG", "name": "alpha-1-B glycoprotein",
   "alias_symbol": ["ABG", "GAB"]},
  {"hgnc_id": "HGNC:37133", "symbol": "A1BG-AS1", "name": "A1BG antisense RNA 1",
   "alias_name": ["A1BG antisense RNA"], "alias_symbol": []}
]}}`
	path := writeFile(t, "hgnc.json", data)

	res, err := iosource.New(false).Load(path, plan.Input{Format: plan.FormatHGNC})
	require.NoError(t, err)
	tbl := res.Table
	assert.Equal(t,
		[]string{"hgnc_id", "symbol", "name", "alias_symbol", "alias_name"},
		tbl.Columns(),
	)
	require.Equal(t, 2, tbl.Len())

	assert.Equal(t, []string{"ABG", "GAB"}, cell(t, tbl, 0, "alias_symbol").Values())
	assert.True(t, cell(t, tbl, 0, "alias_name").IsNull(), "missing field")
	assert.True(t, cell(t, tbl, 1, "alias_symbol").IsList())
	assert.Empty(t, cell(t, tbl, 1, "alias_symbol").Values())
	assert.Equal(t, "A1BG antisense RNA 1", cell(t, tbl, 1, "name").Str())
}

func TestReactome(t *testing.T) {
	data := `[
  {"stId": "R-HSA-1", "name": "Top", "species": "Homo sapiens", "children": [
    {"stId": "R-HSA-2", "name": "Child", "species": "Homo sapiens", "children": [
      {"stId": "R-HSA-3", "name": "Grandchild", "species": "Homo sapiens"}
    ]},
    {"stId": "R-HSA-4", "name": "Sibling", "species": "Homo sapiens"}
  ]},
  {"stId": "R-MMU-1", "name": "Mouse top", "species": "Mus musculus"}
]`
	path := writeFile(t, "events.json", data)

	res, err := iosource.New(false).Load(path, plan.Input{Format: plan.FormatReactome})
	require.NoError(t, err)
	ids, err := res.Table.Column("stId")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"R-HSA-1", "R-HSA-2", "R-HSA-3", "R-HSA-4", "R-MMU-1"},
		ids,
		"depth first, parents before children",
	)
}

func TestOBOGraph(t *testing.T) {
	data := `{"graphs": [{"nodes": [
  {"id": "http://purl.obolibrary.org/obo/DOID_4", "lbl": "disease",
   "meta": {"synonyms": [{"pred": "hasExactSynonym", "val": "illness"}]}},
  {"id": "http://purl.obolibrary.org/obo/DOID_9", "lbl": "old",
   "meta": {"deprecated": true}},
  {"id": "http://www.geneontology.org/formats/oboInOwl#Subset"}
]}]}`
	path := writeFile(t, "doid.json", data)

	res, err := iosource.New(false).Load(path, plan.Input{Format: plan.FormatOBOGraph})
	require.NoError(t, err)
	tbl := res.Table
	require.Equal(t, 3, tbl.Len())

	assert.Equal(t, []string{"illness"}, cell(t, tbl, 0, "synonyms").Values())
	assert.True(t, cell(t, tbl, 0, "deprecated").IsNull())
	assert.Equal(t, "true", cell(t, tbl, 1, "deprecated").Str())
	assert.True(t, cell(t, tbl, 2, "lbl").IsNull())
	assert.True(t, cell(t, tbl, 2, "synonyms").IsNull())
}

func TestJSONErrors(t *testing.T) {
	l := iosource.New(false)

	path := writeFile(t, "bad.json", `{"response": `)
	_, err := l.Load(path, plan.Input{Format: plan.FormatHGNC})
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadInputError, gnErr.Code)

	path = writeFile(t, "obj.json", `{"stId": "R-HSA-1"}`)
	_, err = l.Load(path, plan.Input{Format: plan.FormatReactome})
	require.Error(t, err, "reactome needs a top level array")

	_, err = l.Load(path, plan.Input{Format: plan.FormatCSV})
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.UnknownFormatError, gnErr.Code)
}

const fasta = `>sp|P12345|AATM_RABIT Aspartate aminotransferase OS=Oryctolagus cuniculus OX=9986
MALLHSARVLSGVASAFHPGLAAAASARASSWWAHVEMGPPDPILGVTEAYKRDTNSKKMNLGVGAYRDDNGKPYVLPSV
>broken header
MALLHS
>tr|A0A023|A0A023_9VIRU Polymerase OS=Some virus
MKKL
`

func TestFASTA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniprot_sprot.fasta.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(fasta))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	in := plan.Input{Format: plan.FormatFASTA, Tag: "sprot"}
	res, err := iosource.New(false).Load(path, in)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t,
		[][]string{
			{"P12345", "AATM_RABIT Aspartate aminotransferase", "sprot"},
			{"A0A023", "A0A023_9VIRU Polymerase", "sprot"},
		},
		res.Table.Records(),
	)

	_, err = iosource.New(true).Load(path, in)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MalformedRowError, gnErr.Code)
}

func writeZip(t *testing.T, entry string, data []byte) string {
	path := filepath.Join(t.TempDir(), "Orphanet_Nomenclature_latest.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create(entry)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestOrphanet(t *testing.T) {
	data := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<JDBOR><DisorderList count=\"3\">\n" +
		"<Disorder id=\"1\"><OrphaCode>166024</OrphaCode>" +
		"<Name lang=\"en\">Maladie de M\xe9ni\xe8re</Name>" +
		"<SynonymList count=\"2\"><Synonym lang=\"en\">MD</Synonym>" +
		"<Synonym lang=\"en\">Endolymphatic hydrops</Synonym></SynonymList>" +
		"<DisorderFlagList/></Disorder>\n" +
		"<Disorder id=\"2\"><OrphaCode>58</OrphaCode>" +
		"<Name lang=\"en\">Alexander disease</Name>" +
		"<SynonymList count=\"0\"/></Disorder>\n" +
		"<Disorder id=\"3\"><Name lang=\"en\">No code</Name></Disorder>\n" +
		"</DisorderList></JDBOR>\n"
	path := writeZip(t, iosource.OrphanetEntry, []byte(data))

	res, err := iosource.New(false).Load(path, plan.Input{Format: plan.FormatOrphanet})
	require.NoError(t, err)
	tbl := res.Table
	assert.Equal(t, []string{"OrphaCode", "Name", "Synonym"}, tbl.Columns())
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, 1, res.Skipped)

	assert.Equal(t, "166024", cell(t, tbl, 0, "OrphaCode").Str())
	assert.Equal(t, "Maladie de Ménière", cell(t, tbl, 0, "Name").Str())
	assert.Equal(t,
		[]string{"MD", "Endolymphatic hydrops"},
		cell(t, tbl, 0, "Synonym").Values(),
	)
	assert.Empty(t, cell(t, tbl, 1, "Synonym").Values())

	_, err = iosource.New(true).Load(path, plan.Input{Format: plan.FormatOrphanet})
	require.Error(t, err)
}

func TestOrphanetMissingEntry(t *testing.T) {
	path := writeZip(t, "other.xml", []byte("<JDBOR/>"))
	_, err := iosource.New(false).Load(path, plan.Input{Format: plan.FormatOrphanet})
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadInputError, gnErr.Code)
}

func TestNTriples(t *testing.T) {
	data := `<http://id.nlm.nih.gov/mesh/D000001> <http://www.w3.org/2000/01/rdf-schema#label> "Calcimycin"@en .
<http://id.nlm.nih.gov/mesh/D000001> <http://id.nlm.nih.gov/mesh/vocab#treeNumber> <http://id.nlm.nih.gov/mesh/D03.633> .
<http://id.nlm.nih.gov/mesh/M0000001> <http://www.w3.org/2000/01/rdf-schema#label> "Calcimycin" .
`
	path := writeFile(t, "mesh.nt", data)

	res, err := iosource.New(false).Load(path, plan.Input{Format: plan.FormatNTriples})
	require.NoError(t, err)
	assert.Equal(t, []string{"subject", "label"}, res.Table.Columns())
	assert.Equal(t,
		[][]string{
			{"http://id.nlm.nih.gov/mesh/D000001", "Calcimycin"},
			{"http://id.nlm.nih.gov/mesh/M0000001", "Calcimycin"},
		},
		res.Table.Records(),
	)
}
