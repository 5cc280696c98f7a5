package scrape

import (
	"errors"
	"strings"
	"testing"
)

const listingHTML = `<!doctype html>
<html><body>
<h1>Free Proxy List</h1>
<table class="table table-striped">
<thead><tr>
<th>IP Address</th><th>Port</th><th>Code</th><th>Country</th>
<th>Anonymity</th><th>Google</th><th>Https</th><th>Last Checked</th>
</tr></thead>
<tbody>
<tr><td>123.45.67.89</td><td>8080</td><td>US</td><td>United States</td><td>elite proxy</td><td>no</td><td>no</td><td>1 min ago</td></tr>
<tr><td> 12.34.56.78 </td><td>3128</td><td>DE</td><td>Germany</td><td>anonymous</td><td>no</td><td>yes</td><td>2 mins ago</td></tr>
<tr><td><strong>98.76.54.32</strong></td><td>80</td><td>FR</td><td>France</td><td>transparent</td><td>yes</td><td>no</td><td>5 mins ago</td></tr>
</tbody>
</table>
</body></html>`

func TestExtractRows(t *testing.T) {
	rows, err := ExtractRows(strings.NewReader(listingHTML), freeProxyListLayout)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Whitespace around cell text is trimmed.
	if rows[1][0] != "12.34.56.78" {
		t.Errorf("row 1 address = %q, want %q", rows[1][0], "12.34.56.78")
	}

	// Embedded markup is reduced to plain text.
	if rows[2][0] != "98.76.54.32" {
		t.Errorf("row 2 address = %q, want %q", rows[2][0], "98.76.54.32")
	}

	for i, row := range rows {
		if len(row) != 8 {
			t.Errorf("row %d has %d cells, want 8", i, len(row))
		}
	}
}

func TestExtractRows_PreservesOrder(t *testing.T) {
	rows, err := ExtractRows(strings.NewReader(listingHTML), freeProxyListLayout)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	want := []string{"123.45.67.89", "12.34.56.78", "98.76.54.32"}
	for i, addr := range want {
		if rows[i][0] != addr {
			t.Errorf("row %d address = %q, want %q", i, rows[i][0], addr)
		}
	}
}

func TestExtractRows_NoTable(t *testing.T) {
	html := `<html><body><p>nothing to see here</p></body></html>`

	_, err := ExtractRows(strings.NewReader(html), freeProxyListLayout)
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("got err %v, want ErrTableNotFound", err)
	}
}

func TestExtractRows_WrongSchema(t *testing.T) {
	html := `<html><body>
<table><thead><tr><th>Name</th><th>Score</th></tr></thead>
<tbody><tr><td>alice</td><td>10</td></tr></tbody></table>
</body></html>`

	_, err := ExtractRows(strings.NewReader(html), freeProxyListLayout)
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("got err %v, want ErrTableNotFound", err)
	}
}

func TestExtractRows_SkipsNonMatchingTables(t *testing.T) {
	html := `<html><body>
<table><thead><tr><th>Menu</th></tr></thead><tbody><tr><td>home</td></tr></tbody></table>
` + listingHTML

	rows, err := ExtractRows(strings.NewReader(html), freeProxyListLayout)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
}

func TestExtractRows_EmptyTableBody(t *testing.T) {
	html := `<html><body>
<table><thead><tr>
<th>IP Address</th><th>Port</th><th>Code</th><th>Country</th>
<th>Anonymity</th><th>Google</th><th>Https</th><th>Last Checked</th>
</tr></thead><tbody></tbody></table>
</body></html>`

	rows, err := ExtractRows(strings.NewReader(html), freeProxyListLayout)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}
