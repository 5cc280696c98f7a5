package harvester

import (
	"bytes"
	"context"

	"github.com/thesilentpatch/harvester/internal/filter"
	"github.com/thesilentpatch/harvester/internal/output"
	"github.com/thesilentpatch/harvester/internal/proxy"
	"github.com/thesilentpatch/harvester/internal/scrape"
)

// Harvester runs the fetch -> extract -> parse -> filter -> write pipeline
// against one configured source.
type Harvester struct {
	config  *Config
	fetcher *scrape.Fetcher
}

// Result describes a completed run.
type Result struct {
	Path    string // resolved output file path
	Written int    // lines written
	Scraped int    // data rows found in the table
	Dropped int    // malformed rows skipped
}

func New(config *Config) *Harvester {
	if config == nil {
		config = DefaultConfig()
	}
	return &Harvester{
		config:  config,
		fetcher: scrape.NewFetcher(config.Timeout, config.UserAgent),
	}
}

// Run executes one harvest. It returns a Result on success or exactly one
// of *NetworkError, *ParseError or *IOError on failure. Malformed rows are
// dropped, not fatal.
func (h *Harvester) Run(ctx context.Context) (*Result, error) {
	src := h.config.Source
	logger := h.config.Logger

	logger.Info().Str("source", src.Name).Str("url", src.URL).Msg("Fetching proxy list")
	body, err := h.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, &NetworkError{URL: src.URL, Err: err}
	}

	rows, err := scrape.ExtractRows(bytes.NewReader(body), src.Layout)
	if err != nil {
		return nil, &ParseError{Source: src.Name, Err: err}
	}
	logger.Info().Int("rows", len(rows)).Msgf("Found proxy table on %s", src.Name)

	records := make([]*proxy.Record, 0, len(rows))
	dropped := 0
	for i, row := range rows {
		rec, err := scrape.ParseRow(row, src.Layout)
		if err != nil {
			dropped++
			if h.config.Verbose {
				logger.Debug().Int("row", i).Err(err).Msg("Dropping malformed row")
			}
			continue
		}
		records = append(records, rec)
	}
	if dropped > 0 {
		logger.Info().Int("dropped", dropped).Msg("Skipped malformed rows")
	}

	filtered := filter.Apply(records, h.config.Mode)

	path := output.Resolve(h.config.OutputPath)
	written, err := output.Write(path, filtered)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	logger.Info().
		Str("path", path).
		Int("written", written).
		Str("type", h.config.Mode.String()).
		Msg("Harvest complete")

	return &Result{
		Path:    path,
		Written: written,
		Scraped: len(rows),
		Dropped: dropped,
	}, nil
}
