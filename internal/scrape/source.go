package scrape

// Source is one proxy listing page. All known sources belong to the
// free-proxy-list.net family and share the same table markup.
type Source struct {
	Name   string
	URL    string
	Layout Layout
}

// IP | Port | Code | Country | Anonymity | Google | Https | Last Checked
var freeProxyListLayout = Layout{
	IPCol:        0,
	PortCol:      1,
	HTTPSCol:     6,
	CountryCol:   3,
	AnonymityCol: 4,
}

var sources = []Source{
	{Name: "free-proxy-list", URL: "https://free-proxy-list.net/", Layout: freeProxyListLayout},
	{Name: "sslproxies", URL: "https://www.sslproxies.org/", Layout: freeProxyListLayout},
	{Name: "us-proxy", URL: "https://www.us-proxy.org/", Layout: freeProxyListLayout},
}

// Sources returns the registry of known listing pages.
func Sources() []Source {
	out := make([]Source, len(sources))
	copy(out, sources)
	return out
}

// DefaultSource returns the source used when none is configured.
func DefaultSource() Source {
	return sources[0]
}

// LookupSource finds a registered source by name.
func LookupSource(name string) (Source, bool) {
	for _, s := range sources {
		if s.Name == name {
			return s, true
		}
	}
	return Source{}, false
}
