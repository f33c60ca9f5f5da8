// Package plan describes every converter as data: the inputs it reads, the
// normalization steps applied to them and the output files it writes.
//
// Prefixes, column names and sentinel values are compiled into the plans.
// Only file paths come from the command line.
package plan

import (
	"fmt"
	"slices"
	"sort"

	"github.com/gnames/gncurie/pkg/tabular"
)

// Format tells the engine how to turn an input file into a table.
type Format int

const (
	// FormatTSV is a tab-separated file with a header line.
	FormatTSV Format = iota
	// FormatCSV is a comma-separated file with a header line. Fields may be
	// quoted.
	FormatCSV
	// FormatPositional is a tab-separated file without a header. Column
	// names come from Input.Columns.
	FormatPositional
	// FormatHGNC is the HGNC complete set JSON.
	FormatHGNC
	// FormatReactome is the Reactome events hierarchy JSON.
	FormatReactome
	// FormatOBOGraph is an obographs JSON file such as doid.json.
	FormatOBOGraph
	// FormatFASTA is a UniProt FASTA file, only header lines are used.
	FormatFASTA
	// FormatOrphanet is the zipped Orphanet nomenclature pack.
	FormatOrphanet
	// FormatNTriples is an N-Triples RDF file.
	FormatNTriples
)

var formatNames = map[Format]string{
	FormatTSV:        "tsv",
	FormatCSV:        "csv",
	FormatPositional: "tsv-positional",
	FormatHGNC:       "hgnc-json",
	FormatReactome:   "reactome-json",
	FormatOBOGraph:   "obograph-json",
	FormatFASTA:      "fasta",
	FormatOrphanet:   "orphanet-zip",
	FormatNTriples:   "n-triples",
}

func (f Format) String() string {
	if res, ok := formatNames[f]; ok {
		return res
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// IsDelimited is true for formats handled by the delimited text reader.
func (f Format) IsDelimited() bool {
	return f == FormatTSV || f == FormatCSV || f == FormatPositional
}

// Input is one file a converter reads.
type Input struct {
	// Flag is the command line flag that holds the path.
	Flag string
	// Usage is the flag help text.
	Usage string
	// Format selects the reader.
	Format Format
	// Columns names the fields of a positional file.
	Columns []string
	// Select lists the columns the plan needs. They are projected right
	// after loading, so a source that lost a column fails before any output
	// is written. Empty keeps every column.
	Select []string
	// Tag is handed to loaders that mark rows with their origin, such as
	// "sprot" or "trembl" for UniProt.
	Tag string
}

// Output is one file a converter writes.
type Output struct {
	Flag    string
	Usage   string
	Steps   []tabular.Op
	Columns []string
	// Header adds a line with column names. Only the UniChem filter uses it.
	Header bool
}

// Plan is a complete converter.
type Plan struct {
	Name    string
	Short   string
	Long    string
	Inputs  []Input
	Steps   []tabular.Op
	Outputs []Output
}

// Prepare projects every loaded input, concatenates them and applies the
// shared steps. Tables must be in the order of Inputs.
func (p Plan) Prepare(tables []*tabular.Table) (*tabular.Table, error) {
	if len(tables) != len(p.Inputs) {
		return nil, fmt.Errorf(
			"plan %s expects %d inputs, got %d", p.Name, len(p.Inputs), len(tables),
		)
	}

	parts := make([]*tabular.Table, len(tables))
	for i, t := range tables {
		var err error
		parts[i] = t
		if sel := p.Inputs[i].Select; len(sel) > 0 {
			if parts[i], err = tabular.Project(sel...)(t); err != nil {
				return nil, err
			}
		}
	}

	t := parts[0]
	if len(parts) > 1 {
		var err error
		if t, err = tabular.Concat(parts...); err != nil {
			return nil, err
		}
	}
	return tabular.Pipe(t, p.Steps...)
}

// Render produces the rows of one output from a prepared table.
func (o Output) Render(t *tabular.Table) (*tabular.Table, error) {
	ops := slices.Clone(o.Steps)
	if len(o.Columns) > 0 {
		ops = append(ops, tabular.Project(o.Columns...))
	}
	return tabular.Pipe(t, ops...)
}

// Flags returns all flag names of a plan, inputs first.
func (p Plan) Flags() []string {
	res := make([]string, 0, len(p.Inputs)+len(p.Outputs))
	for _, v := range p.Inputs {
		res = append(res, v.Flag)
	}
	for _, v := range p.Outputs {
		res = append(res, v.Flag)
	}
	return res
}

// Validate checks that a plan can be wired to a command.
func (p Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("plan without a name")
	}
	if len(p.Inputs) == 0 {
		return fmt.Errorf("plan %s: no inputs", p.Name)
	}
	if len(p.Outputs) == 0 {
		return fmt.Errorf("plan %s: no outputs", p.Name)
	}

	seen := make(map[string]struct{})
	for _, v := range p.Flags() {
		if v == "" {
			return fmt.Errorf("plan %s: empty flag name", p.Name)
		}
		if _, ok := seen[v]; ok {
			return fmt.Errorf("plan %s: duplicate flag --%s", p.Name, v)
		}
		seen[v] = struct{}{}
	}

	for _, v := range p.Inputs {
		if _, ok := formatNames[v.Format]; !ok {
			return fmt.Errorf("plan %s: unknown format %s", p.Name, v.Format)
		}
		if v.Format == FormatPositional && len(v.Columns) == 0 {
			return fmt.Errorf("plan %s: positional input --%s has no columns", p.Name, v.Flag)
		}
	}
	return nil
}

var registry = map[string]func() Plan{}

func register(fn func() Plan) {
	p := fn()
	registry[p.Name] = fn
}

// All returns every registered plan sorted by name.
func All() []Plan {
	res := make([]Plan, 0, len(registry))
	for _, fn := range registry {
		res = append(res, fn())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// Get returns a plan by name.
func Get(name string) (Plan, bool) {
	fn, ok := registry[name]
	if !ok {
		return Plan{}, false
	}
	return fn(), true
}
