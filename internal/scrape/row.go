package scrape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thesilentpatch/harvester/internal/proxy"
)

// ParseRow converts one table row into a proxy record. A non-nil error is
// a drop signal for that row only, never a reason to abort the run.
func ParseRow(cells []string, layout Layout) (*proxy.Record, error) {
	if len(cells) < layout.minColumns() {
		return nil, fmt.Errorf("row has %d cells, need at least %d", len(cells), layout.minColumns())
	}

	host := cells[layout.IPCol]
	if !isValidIP(host) {
		return nil, fmt.Errorf("invalid address %q", host)
	}

	portStr := cells[layout.PortCol]
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port %q", portStr)
	}

	rec := &proxy.Record{
		Host: host,
		Port: port,
		// Anything outside the known vocabulary counts as no HTTPS support.
		HTTPS: strings.EqualFold(cells[layout.HTTPSCol], "yes"),
	}
	if layout.CountryCol >= 0 && layout.CountryCol < len(cells) {
		rec.Country = cells[layout.CountryCol]
	}
	if layout.AnonymityCol >= 0 && layout.AnonymityCol < len(cells) {
		rec.Anonymity = cells[layout.AnonymityCol]
	}
	return rec, nil
}
