package projpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// logSubPath is appended to the matched directory to form the log file path.
var logSubPath = filepath.Join("logs", "log.txt")

// ResolutionError is returned when no ancestor of the start directory
// matches the marker name.
type ResolutionError struct {
	Marker string
	Start  string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no ancestor of %q named %q", e.Start, e.Marker)
}

// Resolve walks upward from the current working directory looking for a
// directory named marker (case-insensitive) and returns the log file path
// rooted under it. See ResolveFrom.
func Resolve(marker string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return ResolveFrom(wd, marker)
}

// ResolveFrom walks upward from start, comparing each directory's base
// name case-insensitively against marker. On the first match it returns
// <match>/logs/log.txt. The start directory itself is considered before
// its parents. When the filesystem root is reached without a match, a
// *ResolutionError is returned.
func ResolveFrom(start, marker string) (string, error) {
	if marker == "" {
		return "", errors.New("marker directory name is empty")
	}

	dir := filepath.Clean(start)
	for {
		if strings.EqualFold(filepath.Base(dir), marker) {
			return filepath.Join(dir, logSubPath), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root.
			return "", &ResolutionError{Marker: marker, Start: start}
		}
		dir = parent
	}
}
