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
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/internal/ioconvert"
	"github.com/gnames/gncurie/pkg/plan"
	"github.com/spf13/cobra"
)

// getConvertCmds returns one command per registered converter.
func getConvertCmds() []*cobra.Command {
	var res []*cobra.Command
	for _, v := range plan.All() {
		res = append(res, getConvertCmd(v))
	}
	return res
}

// getConvertCmd builds the command of a converter from its plan. Every
// input and output path is a required flag.
func getConvertCmd(p plan.Plan) *cobra.Command {
	usage := make(map[string]string)
	for _, v := range p.Inputs {
		usage[v.Flag] = v.Usage
	}
	for _, v := range p.Outputs {
		usage[v.Flag] = v.Usage
	}

	var paths map[string]*string
	convertCmd := &cobra.Command{
		Use:   p.Name + " " + flagsUsage(p),
		Short: p.Short,
		Long:  p.Long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runConvert(cmd, p, paths)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	paths = pathFlags(convertCmd, p.Flags(), usage)

	return convertCmd
}

func flagsUsage(p plan.Plan) string {
	var res string
	for i, v := range p.Flags() {
		if i > 0 {
			res += " "
		}
		res += "--" + v + " PATH"
	}
	return res
}

func runConvert(
	_ *cobra.Command,
	p plan.Plan,
	paths map[string]*string,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	values := make(map[string]string, len(paths))
	for k, v := range paths {
		values[k] = *v
	}

	gn.Info("Running <em>%s</em> converter", p.Name)
	engine := ioconvert.New(cfg, nil)
	_, err := engine.Convert(ctx, p, values)
	return err
}
