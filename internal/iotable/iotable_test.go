package iotable_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/internal/iotable"
	"github.com/gnames/gncurie/pkg/errcode"
	"github.com/gnames/gncurie/pkg/plan"
	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader(t *testing.T) {
	data := "#Complex ac\tRecommended name\tAliases for complex\r\n" +
		"CPX-1\tFoo Complex\tA|B|-\r\n" +
		"\n" +
		"CPX-2\t\t-\n"

	r := iotable.New(false)
	res, err := r.Decode(strings.NewReader(data), plan.Input{Format: plan.FormatTSV})
	require.NoError(t, err)

	tbl := res.Table
	assert.Equal(t,
		[]string{"#Complex ac", "Recommended name", "Aliases for complex"},
		tbl.Columns(),
	)
	assert.Equal(t, 2, tbl.Len(), "blank line is ignored")
	c, _ := tbl.Cell(1, "Recommended name")
	assert.True(t, c.IsNull(), "empty field is null")
	c, _ = tbl.Cell(0, "Aliases for complex")
	assert.Equal(t, "A|B|-", c.Str())
	assert.Zero(t, res.Skipped)
}

func TestDecodeBOMAndNoTrailingNewline(t *testing.T) {
	data := "\ufeffid\tname\n1\tone"
	res, err := iotable.New(false).Decode(
		strings.NewReader(data), plan.Input{Format: plan.FormatTSV},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, res.Table.Columns())
	assert.Equal(t, [][]string{{"1", "one"}}, res.Table.Records())
}

func TestDecodePositional(t *testing.T) {
	data := "P06217\tToll pathway\tP06348\n" +
		"P00001\tAdrenaline\tP1\textra\n"
	in := plan.Input{
		Format:  plan.FormatPositional,
		Columns: []string{"I", "II", "III"},
	}
	res, err := iotable.New(false).Decode(strings.NewReader(data), in)
	require.NoError(t, err)
	assert.Equal(t,
		[][]string{
			{"P06217", "Toll pathway", "P06348"},
			{"P00001", "Adrenaline", "P1"},
		},
		res.Table.Records(),
		"extra fields are truncated",
	)
}

func TestDecodeCSV(t *testing.T) {
	data := `SMPDB ID,PW ID,Name,Subject,Description
SMP0000001,PW000001,Alanine Metabolism,Metabolic,"Alanine, a ""simple"" amino acid"
SMP0000002,PW000002,"Arginine and Proline",Metabolic,"line one
line two"
`
	in := plan.Input{Format: plan.FormatCSV}
	res, err := iotable.New(false).Decode(strings.NewReader(data), in)
	require.NoError(t, err)
	require.Equal(t, 2, res.Table.Len())

	c, _ := res.Table.Cell(0, "Description")
	assert.Equal(t, `Alanine, a "simple" amino acid`, c.Str())
	c, _ = res.Table.Cell(1, "Name")
	assert.Equal(t, "Arginine and Proline", c.Str())
	c, _ = res.Table.Cell(1, "Description")
	assert.Equal(t, "line one\nline two", c.Str())
}

func TestDecodeShortRows(t *testing.T) {
	data := "a\tb\tc\td\n" +
		"1\t2\t3\t4\n" +
		"5\n" +
		"6\t7\n"

	tests := []struct {
		msg     string
		sel     []string
		rows    [][]string
		skipped int
	}{
		{
			msg:     "all columns needed",
			rows:    [][]string{{"1", "2", "3", "4"}},
			skipped: 2,
		},
		{
			msg:     "only first two needed",
			sel:     []string{"b", "a"},
			rows:    [][]string{{"1", "2", "3", "4"}, {"6", "7", "", ""}},
			skipped: 1,
		},
	}

	for _, v := range tests {
		in := plan.Input{Format: plan.FormatTSV, Select: v.sel}
		res, err := iotable.New(false).Decode(strings.NewReader(data), in)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.rows, res.Table.Records(), v.msg)
		assert.Equal(t, v.skipped, res.Skipped, v.msg)
	}
}

func TestDecodeStrict(t *testing.T) {
	data := "a\tb\n1\t2\n3\n"
	_, err := iotable.New(true).Decode(
		strings.NewReader(data), plan.Input{Format: plan.FormatTSV},
	)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MalformedRowError, gnErr.Code)
	assert.Equal(t, []any{2, "input", 1, 2}, gnErr.Vars)
}

func TestDecodeInvalidUTF8(t *testing.T) {
	data := "id\tname\n1\tcaf\xe9\n2\tok\n"
	res, err := iotable.New(false).Decode(
		strings.NewReader(data), plan.Input{Format: plan.FormatTSV},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Replaced)

	c, _ := res.Table.Cell(0, "name")
	assert.Equal(t, "caf\uFFFD", c.Str())
}

func TestDecodeErrors(t *testing.T) {
	_, err := iotable.New(false).Decode(
		strings.NewReader(""), plan.Input{Format: plan.FormatTSV},
	)
	require.Error(t, err, "header is required")

	_, err = iotable.New(false).Decode(
		strings.NewReader("a"), plan.Input{Format: plan.FormatFASTA},
	)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.UnknownFormatError, gnErr.Code)

	res, err := iotable.New(false).Decode(
		strings.NewReader(""),
		plan.Input{Format: plan.FormatPositional, Columns: []string{"I"}},
	)
	require.NoError(t, err, "positional input may be empty")
	assert.Zero(t, res.Table.Len())
}

func TestReadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gene_info.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte("#tax_id\tGeneID\n9606\t1\n9606\t2\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	res, err := iotable.New(false).Read(path, plan.Input{Format: plan.FormatTSV})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"9606", "1"}, {"9606", "2"}}, res.Table.Records())

	_, err = iotable.New(false).Read(path+".missing", plan.Input{Format: plan.FormatTSV})
	require.Error(t, err)
}

func TestDecodeMissingColumn(t *testing.T) {
	data := "#Complex ac\tRecommended name\nCPX-1\tFoo\nCPX-2\n"
	in := plan.Input{
		Format: plan.FormatTSV,
		Select: []string{"#Complex ac", "Recommended name", "Aliases for complex"},
	}

	tests := []struct {
		msg    string
		strict bool
	}{
		{"lenient", false},
		{"strict, short row comes after the header", true},
	}

	for _, v := range tests {
		_, err := iotable.New(v.strict).Decode(strings.NewReader(data), in)
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.SchemaMissingColumnError, gnErr.Code, v.msg)
		assert.Contains(t, err.Error(), "Aliases for complex", v.msg)
	}

	in = plan.Input{
		Format:  plan.FormatPositional,
		Columns: []string{"I", "II"},
		Select:  []string{"I", "IV"},
	}
	_, err := iotable.New(false).Decode(strings.NewReader("a\tb\n"), in)
	require.Error(t, err, "positional select outside of columns")
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SchemaMissingColumnError, gnErr.Code)
}
