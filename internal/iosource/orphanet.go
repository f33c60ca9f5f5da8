package iosource

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gncurie/internal/iotable"
	"github.com/gnames/gncurie/pkg/tabular"
	"golang.org/x/text/encoding/charmap"
)

// OrphanetEntry is the nomenclature file inside the Orphanet pack.
const OrphanetEntry = "Orphanet_Nomenclature_Pack_en/ORPHAnomenclature_en.xml"

type disorder struct {
	OrphaCode string   `xml:"OrphaCode"`
	Names     []string `xml:"Name"`
	Synonyms  []string `xml:"SynonymList>Synonym"`
}

func (l *Loader) orphanet(path string) (*iotable.Result, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, ReadInputError(path, err)
	}
	defer zr.Close()

	f, err := zr.Open(OrphanetEntry)
	if err != nil {
		return nil, ReadInputError(path, fmt.Errorf("%s: %w", OrphanetEntry, err))
	}
	defer f.Close()

	return l.orphanetXML(path, f)
}

func (l *Loader) orphanetXML(path string, r io.Reader) (*iotable.Result, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var rows []tabular.Row
	var skipped int
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadInputError(path, err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Disorder" {
			continue
		}

		var d disorder
		if err = dec.DecodeElement(&d, &se); err != nil {
			return nil, ReadInputError(path, err)
		}
		if d.OrphaCode == "" || len(d.Names) == 0 {
			if l.strict {
				return nil, MalformedRecordError(path, "Disorder "+d.OrphaCode,
					errors.New("no OrphaCode or Name"))
			}
			skipped++
			continue
		}

		rows = append(rows, tabular.Row{
			tabular.String(strings.TrimSpace(d.OrphaCode)),
			tabular.String(strings.TrimSpace(d.Names[0])),
			tabular.List(d.Synonyms),
		})
	}

	return result([]string{"OrphaCode", "Name", "Synonym"}, rows, skipped)
}

// charsetReader decodes the Latin encodings Orphanet files declare.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	case "utf-8", "utf8":
		return input, nil
	}
	return nil, fmt.Errorf("unsupported charset %s", label)
}
