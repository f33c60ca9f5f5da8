package lifecycle

import "context"

// Crawler downloads gene tables for every Ensembl BioMart dataset.
// Datasets that already have a file in the output directory are not
// downloaded again, so an interrupted crawl can be resumed.
type Crawler interface {
	// Crawl saves one TSV per dataset under outDir and returns the number
	// of datasets processed.
	Crawl(ctx context.Context, outDir string) (int, error)
}
