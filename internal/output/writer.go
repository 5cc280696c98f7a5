package output

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/thesilentpatch/harvester/internal/proxy"
)

// DefaultFileName is appended when the output path names a directory.
const DefaultFileName = "proxies.txt"

// Resolve turns a user-supplied output path into a concrete file path.
// A path with a trailing separator, or one naming an existing directory,
// gets DefaultFileName appended; anything else is the literal target.
func Resolve(path string) string {
	if path == "" {
		return DefaultFileName
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return filepath.Join(path, DefaultFileName)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, DefaultFileName)
	}
	return path
}

// Write persists records to path as one "host:port" line each, in order,
// creating missing parent directories first. The file is created even when
// records is empty. Returns the number of lines written.
func Write(path string, records []*proxy.Record) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, r := range records {
		if _, err := w.WriteString(r.String() + "\n"); err != nil {
			return 0, err
		}
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}
	return len(records), nil
}
