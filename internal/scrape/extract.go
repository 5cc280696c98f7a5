package scrape

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrTableNotFound is returned when no table in the document matches the
// declared layout.
var ErrTableNotFound = errors.New("expected proxy table not found")

// Layout is the declared column mapping of a proxy listing table. Column
// positions are fixed per source; a schema change upstream surfaces as
// ErrTableNotFound rather than misparsed rows.
type Layout struct {
	IPCol        int
	PortCol      int
	HTTPSCol     int
	CountryCol   int // -1 if the table has no country column
	AnonymityCol int // -1 if the table has no anonymity column
}

func (l Layout) minColumns() int {
	n := l.IPCol
	if l.PortCol > n {
		n = l.PortCol
	}
	if l.HTTPSCol > n {
		n = l.HTTPSCol
	}
	return n + 1
}

// matchesHeader reports whether the header cells of a table line up with
// the layout's declared positions.
func (l Layout) matchesHeader(headers []string) bool {
	if len(headers) < l.minColumns() {
		return false
	}
	return strings.Contains(strings.ToLower(headers[l.IPCol]), "ip") &&
		strings.Contains(strings.ToLower(headers[l.PortCol]), "port") &&
		strings.Contains(strings.ToLower(headers[l.HTTPSCol]), "https")
}

// ExtractRows locates the proxy table in the document and returns its data
// rows in source order, one []string of trimmed cell texts per row. The
// header row is not included. Embedded markup inside cells is reduced to
// plain text by goquery.
func ExtractRows(r io.Reader, layout Layout) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if layout.matchesHeader(headerCells(s)) {
			table = s
			return false
		}
		return true
	})
	if table == nil {
		return nil, ErrTableNotFound
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return // header row
		}
		cells := make([]string, 0, tds.Length())
		tds.Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		rows = append(rows, cells)
	})
	return rows, nil
}

func headerCells(table *goquery.Selection) []string {
	var headers []string
	table.Find("tr").First().Find("th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(th.Text()))
	})
	return headers
}
