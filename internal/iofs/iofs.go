package iofs

import (
	"bufio"
	_ "embed"
	"io"
	"os"

	"github.com/gnames/gncurie/pkg/config"
	"github.com/klauspost/pgzip"
)

//go:embed config.yaml
var ConfigYAML string

var gzipMagic = []byte{0x1f, 0x8b}

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// Open opens an input file for reading. Gzipped content is detected by its
// magic bytes and decompressed, whatever the file name.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadInputError(path, err)
	}

	br := bufio.NewReaderSize(f, 1<<20)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		f.Close()
		return nil, ReadInputError(path, err)
	}

	if len(head) == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		gz, err := pgzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, ReadInputError(path, err)
		}
		return &readCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
	}

	return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var res error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && res == nil {
			res = err
		}
	}
	return res
}
