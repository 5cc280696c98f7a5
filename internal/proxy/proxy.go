package proxy

import "fmt"

// Record is one proxy entry scraped from a listing page.
type Record struct {
	Host      string
	Port      int
	HTTPS     bool
	Country   string
	Anonymity string
}

func (r *Record) String() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
