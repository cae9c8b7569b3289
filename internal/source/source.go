// Package source resolves a program's source file into a rune stream
// ready for internal/scanner, stripping a leading UTF-8 byte-order mark
// if present. It is the "source-file reader and path resolution"
// collaborator spec §1 names as external to the core.
package source

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Open opens path and returns a reader with any leading UTF-8 BOM
// stripped, along with a close function the caller must defer.
func Open(path string) (r io.Reader, closeFn func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open source %q: %w", path, err)
	}

	bomAware := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return transform.NewReader(f, bomAware), f.Close, nil
}
