package changes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/changetools/bumpchanges/internal/errors"
)

// candidateNames are the conventional Changes-file names, in priority order.
var candidateNames = []string{"Changes", "ChangeLog", "CHANGES", "CHANGELOG"}

// Locate resolves the Changes file path within dir. An explicit name wins
// over the candidate search but must exist; otherwise the first existing
// candidate is selected. Either way a missing file is a prerequisite failure.
func Locate(dir, explicit string) (string, error) {
	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return "", errors.NewPrerequisiteError(
				fmt.Sprintf("changes file %s not found", path),
				"Check the --file path")
		}
		return path, nil
	}

	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.NewPrerequisiteError(
		"no Changes file found (tried "+strings.Join(candidateNames, ", ")+")",
		"Create a Changes file in the current directory",
		"Or pass one explicitly with --file")
}
