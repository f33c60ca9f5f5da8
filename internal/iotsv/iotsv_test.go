package iotsv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/internal/iotsv"
	"github.com/gnames/gncurie/pkg/errcode"
	"github.com/gnames/gncurie/pkg/tabular"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *tabular.Table {
	t.Helper()
	tbl, err := tabular.New(
		[]string{"id", "label", "syns"},
		[]tabular.Row{
			{tabular.String("ComplexPortal:CPX-1"), tabular.String("Foo Complex"), tabular.List([]string{"A", "B"})},
			{tabular.String("ComplexPortal:CPX-2"), tabular.Null(), tabular.List(nil)},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0755))
	w := iotsv.New(fs)

	n, err := w.Write("/out/labels.tsv", sample(t), false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := afero.ReadFile(fs, "/out/labels.tsv")
	require.NoError(t, err)
	assert.Equal(t,
		"ComplexPortal:CPX-1\tFoo Complex\tA|B\n"+
			"ComplexPortal:CPX-2\t\t\n",
		string(data),
	)

	files, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	assert.Len(t, files, 1, "temporary file is gone")
}

func TestWriteHeader(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := iotsv.New(fs)

	tbl, err := tabular.FromStrings(
		[]string{"UCI", "SRC_ID"},
		[][]string{{"1", "7"}},
	)
	require.NoError(t, err)

	_, err = w.Write("/unichem.tsv", tbl, true)
	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "/unichem.tsv")
	require.NoError(t, err)
	assert.Equal(t, "UCI\tSRC_ID\n1\t7\n", string(data))
}

func TestWriteReplaces(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := iotsv.New(fs)
	path := "/labels.tsv"
	require.NoError(t, afero.WriteFile(fs, path, []byte("stale\nrows\nfrom\nbefore\n"), 0644))

	_, err := w.Write(path, sample(t), false)
	require.NoError(t, err)
	first, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	_, err = w.Write(path, sample(t), false)
	require.NoError(t, err)
	second, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-run is byte identical")
	assert.NotContains(t, string(second), "stale")
}

func TestWriteOsFs(t *testing.T) {
	dir := t.TempDir()
	w := iotsv.New(nil)
	path := filepath.Join(dir, "labels.tsv")

	_, err := w.Write(path, sample(t), false)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteCannotCreate(t *testing.T) {
	w := iotsv.New(afero.NewOsFs())
	path := filepath.Join(t.TempDir(), "missing", "labels.tsv")

	_, err := w.Write(path, sample(t), false)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateOutputError, gnErr.Code)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
