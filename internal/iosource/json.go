package iosource

import (
	"errors"

	"github.com/gnames/gncurie/internal/iotable"
	"github.com/gnames/gncurie/pkg/tabular"
	"github.com/tidwall/gjson"
)

func field(v gjson.Result, path string) tabular.Cell {
	res := v.Get(path)
	return str(res.String(), res.Exists() && res.Type != gjson.Null)
}

func list(v gjson.Result, path string) tabular.Cell {
	res := v.Get(path)
	if !res.IsArray() {
		return tabular.Null()
	}
	var vals []string
	for _, e := range res.Array() {
		vals = append(vals, e.String())
	}
	return tabular.List(vals)
}

func jsonRoot(path string, data []byte, query string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, ReadInputError(path, errors.New("invalid JSON"))
	}
	if query == "" {
		return gjson.ParseBytes(data), nil
	}
	res := gjson.GetBytes(data, query)
	if !res.IsArray() {
		return gjson.Result{}, ReadInputError(path, errors.New(query+" is not an array"))
	}
	return res, nil
}

// hgnc reads response.docs of the HGNC complete set.
func hgnc(path string, data []byte) (*iotable.Result, error) {
	docs, err := jsonRoot(path, data, "response.docs")
	if err != nil {
		return nil, err
	}

	var rows []tabular.Row
	docs.ForEach(func(_, v gjson.Result) bool {
		rows = append(rows, tabular.Row{
			field(v, "hgnc_id"),
			field(v, "symbol"),
			field(v, "name"),
			list(v, "alias_symbol"),
			list(v, "alias_name"),
		})
		return true
	})

	cols := []string{"hgnc_id", "symbol", "name", "alias_symbol", "alias_name"}
	return result(cols, rows, 0)
}

// reactome walks the events hierarchy depth first. Parents come before
// their children.
func reactome(path string, data []byte) (*iotable.Result, error) {
	root, err := jsonRoot(path, data, "")
	if err != nil {
		return nil, err
	}
	if !root.IsArray() {
		return nil, ReadInputError(path, errors.New("top level is not an array"))
	}

	var rows []tabular.Row
	var walk func(v gjson.Result)
	walk = func(v gjson.Result) {
		rows = append(rows, tabular.Row{
			field(v, "stId"),
			field(v, "name"),
			field(v, "species"),
		})
		for _, child := range v.Get("children").Array() {
			walk(child)
		}
	}
	for _, v := range root.Array() {
		walk(v)
	}

	return result([]string{"stId", "name", "species"}, rows, 0)
}

// oboGraph reads nodes of the first graph of an obographs document.
func oboGraph(path string, data []byte) (*iotable.Result, error) {
	nodes, err := jsonRoot(path, data, "graphs.0.nodes")
	if err != nil {
		return nil, err
	}

	var rows []tabular.Row
	nodes.ForEach(func(_, v gjson.Result) bool {
		deprecated := tabular.Null()
		if v.Get("meta.deprecated").Bool() {
			deprecated = tabular.String("true")
		}
		rows = append(rows, tabular.Row{
			field(v, "id"),
			field(v, "lbl"),
			deprecated,
			list(v, "meta.synonyms.#.val"),
		})
		return true
	})

	return result([]string{"id", "lbl", "deprecated", "synonyms"}, rows, 0)
}

func result(cols []string, rows []tabular.Row, skipped int) (*iotable.Result, error) {
	t, err := tabular.New(cols, rows)
	if err != nil {
		return nil, err
	}
	return &iotable.Result{Table: t, Skipped: skipped}, nil
}
