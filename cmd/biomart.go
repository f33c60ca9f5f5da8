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
	"github.com/gnames/gncurie/internal/iobiomart"
	"github.com/spf13/cobra"
)

// getBioMartCmd returns the biomart command.
func getBioMartCmd() *cobra.Command {
	var outDir string

	biomartCmd := &cobra.Command{
		Use:   "biomart --ensembl-output-dir DIR",
		Short: "Download gene tables of all Ensembl BioMart datasets",
		Long: `Downloads gene attributes of every dataset of the Ensembl gene
mart. Each dataset is saved as DIR/<dataset>/BioMart.tsv with a header
line. Datasets that already have a file are skipped, so an interrupted
download can be resumed by running the command again.

When all datasets are saved, DIR/BioMartDownloadComplete is written.

The endpoint, request timeout and number of retries are set in the
biomart section of the config file.

Examples:
  gncurie biomart --ensembl-output-dir ensembl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBioMart(outDir)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	biomartCmd.Flags().StringVarP(&outDir, "ensembl-output-dir", "e", "",
		"directory for downloaded datasets")
	_ = biomartCmd.MarkFlagRequired("ensembl-output-dir")

	return biomartCmd
}

func runBioMart(outDir string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	crawler := iobiomart.New(cfg, nil)
	_, err := crawler.Crawl(ctx, outDir)
	return err
}
