// Package iobiomart implements the Crawler interface for Ensembl BioMart.
//
// For every dataset of the Ensembl gene mart it asks which attributes the
// dataset has, requests the usable ones as TSV and saves the answer as
// <dir>/<dataset>/BioMart.tsv. A marker file BioMartDownloadComplete is
// written when all datasets are done.
package iobiomart

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
	"github.com/gnames/gncurie/internal/iotable"
	"github.com/gnames/gncurie/internal/iotsv"
	"github.com/gnames/gncurie/pkg/config"
	"github.com/gnames/gncurie/pkg/plan"
	"github.com/gnames/gnfmt"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/afero"
)

const (
	// Mart is the BioMart mart with gene datasets.
	Mart = "ENSEMBL_MART_ENSEMBL"
	// DatasetFile is the name of a saved dataset.
	DatasetFile = "BioMart.tsv"
	// CompleteFile marks a finished crawl.
	CompleteFile = "BioMartDownloadComplete"
)

// Crawler downloads BioMart datasets.
type Crawler struct {
	url     string
	retries int
	backoff time.Duration
	client  *resty.Client
	fs      afero.Fs
	writer  *iotsv.Writer
	reader  *iotable.Reader
}

// New creates a Crawler from the BioMart settings of cfg. Files are saved
// to fs, nil means the operating system file system.
func New(cfg *config.Config, fs afero.Fs) *Crawler {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Crawler{
		url:     cfg.BioMart.URL,
		retries: cfg.BioMart.Retries,
		backoff: time.Second,
		client:  NewClient(time.Duration(cfg.BioMart.Timeout) * time.Second),
		fs:      fs,
		writer:  iotsv.New(fs),
		reader:  iotable.New(false),
	}
}

// NewClient creates the HTTP client used for BioMart requests. It follows
// at most five redirects.
func NewClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("Content-Type", "text/plain")
}

// WithBackoff sets the first delay between repeated requests.
func (c *Crawler) WithBackoff(d time.Duration) *Crawler {
	c.backoff = d
	return c
}

// Crawl downloads every dataset that does not have a file in outDir yet.
func (c *Crawler) Crawl(ctx context.Context, outDir string) (int, error) {
	start := time.Now()
	if err := c.fs.MkdirAll(outDir, 0o755); err != nil {
		return 0, WriteError(outDir, err)
	}

	datasets, err := c.datasets(ctx)
	if err != nil {
		return 0, err
	}
	slog.Info("BioMart datasets", "count", len(datasets))
	gn.Info("Found <em>%d</em> BioMart datasets", len(datasets))

	bar := pb.Full.Start(len(datasets))
	bar.Set("prefix", "Datasets: ")
	bar.Set(pb.CleanOnFinish, true)

	for _, v := range datasets {
		if err = ctx.Err(); err != nil {
			bar.Finish()
			return 0, RequestError(c.url, err)
		}
		if err = c.dataset(ctx, outDir, v); err != nil {
			bar.Finish()
			return 0, err
		}
		bar.Increment()
	}
	bar.Finish()

	path := filepath.Join(outDir, CompleteFile)
	msg := fmt.Sprintf("Downloaded gene sets for %d data sets.\n", len(datasets))
	if err = afero.WriteFile(c.fs, path, []byte(msg), 0o644); err != nil {
		return 0, WriteError(path, err)
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("BioMart crawl complete", "datasets", len(datasets), "duration", dur)
	gn.Info("Downloaded <em>%d</em> datasets in %s", len(datasets), dur)
	return len(datasets), nil
}

// datasets lists gene datasets of the mart without the skipped ones. The
// dataset name is the second field of every line.
func (c *Crawler) datasets(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, map[string]string{"type": "datasets", "mart": Mart})
	if err != nil {
		return nil, err
	}

	var res []string
	for _, fields := range lines(body) {
		if len(fields) < 2 || fields[1] == "" {
			continue
		}
		if slices.Contains(skippedDatasets, fields[1]) {
			continue
		}
		res = append(res, fields[1])
	}
	return res, nil
}

// attributes returns the usable attributes of a dataset.
func (c *Crawler) attributes(ctx context.Context, dataset string) ([]string, error) {
	body, err := c.get(ctx, map[string]string{"type": "attributes", "dataset": dataset})
	if err != nil {
		return nil, err
	}

	var attrs []string
	for _, fields := range lines(body) {
		attrs = append(attrs, fields[0])
	}
	return usable(attrs), nil
}

func (c *Crawler) dataset(ctx context.Context, outDir, dataset string) error {
	dir := filepath.Join(outDir, dataset)
	path := filepath.Join(dir, DatasetFile)
	if ok, _ := afero.Exists(c.fs, path); ok {
		slog.Info("Dataset exists, skipping", "dataset", dataset)
		return nil
	}

	dsStart := time.Now()
	attrs, err := c.attributes(ctx, dataset)
	if err != nil {
		return err
	}
	if len(attrs) == 0 {
		return ResponseError(dataset, "no usable attributes")
	}

	q, err := buildQuery(dataset, attrs)
	if err != nil {
		return ResponseError(dataset, err.Error())
	}
	slog.Debug("BioMart query", "dataset", dataset, "query", q)

	body, err := c.get(ctx, map[string]string{"query": q})
	if err != nil {
		return err
	}
	if strings.HasPrefix(strings.TrimSpace(body), "Query ERROR") {
		return ResponseError(dataset, strings.TrimSpace(body))
	}

	// Ragged rows are repaired the same way as converter inputs.
	res, err := c.reader.Decode(strings.NewReader(body), plan.Input{Format: plan.FormatTSV})
	if err != nil {
		return ResponseError(dataset, err.Error())
	}

	if err = c.fs.MkdirAll(dir, 0o755); err != nil {
		return WriteError(dir, err)
	}
	if _, err = c.writer.Write(path, res.Table, true); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Dataset saved",
		"dataset", dataset,
		"rows", res.Table.Len(),
		"skipped", res.Skipped,
		"duration", gnfmt.TimeString(time.Since(dsStart).Seconds()),
	)
	return nil
}

// get sends a request to the martservice and returns the body. Network
// errors and server errors are repeated with exponential backoff.
func (c *Crawler) get(ctx context.Context, params map[string]string) (string, error) {
	var body string
	backoff := retry.WithMaxRetries(uint64(max(c.retries, 0)), retry.NewExponential(c.backoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(c.url)
		if err != nil {
			slog.Warn("BioMart request failed", "error", err)
			return retry.RetryableError(err)
		}

		code := resp.StatusCode()
		if code >= http.StatusInternalServerError || code == http.StatusTooManyRequests {
			slog.Warn("BioMart is unavailable", "status", code)
			return retry.RetryableError(fmt.Errorf("status %d", code))
		}
		if code != http.StatusOK {
			return fmt.Errorf("status %d", code)
		}
		body = resp.String()
		return nil
	})
	if err != nil {
		return "", RequestError(c.url, err)
	}
	return body, nil
}

// lines splits a tab-separated answer into trimmed non-empty lines.
func lines(body string) [][]string {
	var res [][]string
	sc := bufio.NewScanner(strings.NewReader(body))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		res = append(res, strings.Split(line, "\t"))
	}
	return res
}
