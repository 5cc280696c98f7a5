package filter

import (
	"fmt"

	"github.com/thesilentpatch/harvester/internal/proxy"
)

// Mode selects which protocol capability to keep.
type Mode int

const (
	ModeAll Mode = iota
	ModeHTTP
	ModeHTTPS
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeHTTP:
		return "http"
	case ModeHTTPS:
		return "https"
	}
	return "unknown"
}

// ParseMode converts a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "all":
		return ModeAll, nil
	case "http":
		return ModeHTTP, nil
	case "https":
		return ModeHTTPS, nil
	}
	return ModeAll, fmt.Errorf("unknown proxy type %q (want http, https or all)", s)
}

// Apply returns the records matching mode, in their original order. The
// result is always a fresh slice; the input is never mutated.
func Apply(records []*proxy.Record, mode Mode) []*proxy.Record {
	out := make([]*proxy.Record, 0, len(records))
	for _, r := range records {
		switch mode {
		case ModeAll:
			out = append(out, r)
		case ModeHTTPS:
			if r.HTTPS {
				out = append(out, r)
			}
		case ModeHTTP:
			if !r.HTTPS {
				out = append(out, r)
			}
		}
	}
	return out
}
