package harvester

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/thesilentpatch/harvester/internal/filter"
	"github.com/thesilentpatch/harvester/internal/output"
	"github.com/thesilentpatch/harvester/internal/scrape"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"

// Mode and Source are re-exported so callers never need the internal
// packages.
type Mode = filter.Mode

const (
	ModeAll   = filter.ModeAll
	ModeHTTP  = filter.ModeHTTP
	ModeHTTPS = filter.ModeHTTPS
)

// ParseMode converts a user-supplied mode string ("http", "https", "all").
func ParseMode(s string) (Mode, error) { return filter.ParseMode(s) }

type Source = scrape.Source

// Sources returns the registry of known proxy listing pages.
func Sources() []Source { return scrape.Sources() }

// LookupSource finds a registered source by name.
func LookupSource(name string) (Source, bool) { return scrape.LookupSource(name) }

type Config struct {
	Source     scrape.Source
	Mode       filter.Mode
	OutputPath string
	Verbose    bool
	Timeout    time.Duration
	UserAgent  string
	Logger     zerolog.Logger
}

func DefaultConfig() *Config {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &Config{
		Source:     scrape.DefaultSource(),
		Mode:       filter.ModeHTTPS,
		OutputPath: output.DefaultFileName,
		Timeout:    30 * time.Second,
		UserAgent:  defaultUserAgent,
		Logger:     logger,
	}
}
