/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/gncurie/pkg/plan"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type listInput struct {
	Flag   string   `yaml:"flag"`
	Format string   `yaml:"format"`
	Usage  string   `yaml:"usage"`
	Select []string `yaml:"columns,omitempty"`
}

type listOutput struct {
	Flag    string   `yaml:"flag"`
	Usage   string   `yaml:"usage"`
	Columns []string `yaml:"columns,omitempty"`
	Header  bool     `yaml:"header,omitempty"`
}

type listItem struct {
	Name    string       `yaml:"name"`
	Summary string       `yaml:"summary"`
	Inputs  []listInput  `yaml:"inputs"`
	Outputs []listOutput `yaml:"outputs"`
}

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show all converters with their inputs and outputs",
		Long: `Prints every converter as YAML: its name, the flags of its input
files with their formats, and the flags of the files it writes.

Examples:
  gncurie list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runList(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return listCmd
}

func runList(cmd *cobra.Command) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(listPlans(plan.All()))
}

func listPlans(plans []plan.Plan) []listItem {
	res := make([]listItem, 0, len(plans))
	for _, p := range plans {
		item := listItem{Name: p.Name, Summary: p.Short}
		for _, v := range p.Inputs {
			item.Inputs = append(item.Inputs, listInput{
				Flag:   v.Flag,
				Format: v.Format.String(),
				Usage:  v.Usage,
				Select: v.Select,
			})
		}
		for _, v := range p.Outputs {
			item.Outputs = append(item.Outputs, listOutput{
				Flag:    v.Flag,
				Usage:   v.Usage,
				Columns: v.Columns,
				Header:  v.Header,
			})
		}
		res = append(res, item)
	}
	return res
}
