package scrape

import (
	"regexp"
	"strconv"
	"strings"
)

var ipPattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)

// isValidIP checks for a dotted-quad address with octets in [0, 255].
func isValidIP(ip string) bool {
	if !ipPattern.MatchString(ip) {
		return false
	}

	for _, part := range strings.Split(ip, ".") {
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 255 {
			return false
		}
	}
	return true
}
