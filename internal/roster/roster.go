// Package roster loads the list of meeting participants and produces the
// randomized speaking order.
package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrNotFound indicates the names file does not exist.
	ErrNotFound = errors.New("names file not found")
	// ErrEmpty indicates the names file contained no usable names.
	ErrEmpty = errors.New("no names found in file")
)

// Load reads one participant name per line from path. Lines are trimmed and
// blank lines skipped, so the file may be freely formatted.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading names file %s: %w", path, err)
	}

	var names []string
	for line := range strings.Lines(string(data)) {
		name := strings.TrimSpace(line)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return names, nil
}
