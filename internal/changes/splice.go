package changes

import (
	"fmt"
	"regexp"

	"github.com/changetools/bumpchanges/internal/errors"
)

// insertAnchor locates the top of the existing version history: the first
// line that begins with a digit.
var insertAnchor = regexp.MustCompile(`(?m)^\d`)

// Splice inserts the rendered entry immediately before the first line of
// content that starts with a digit. It fails when no such line exists,
// leaving the caller's content untouched.
func Splice(content, entry string) (string, error) {
	loc := insertAnchor.FindStringIndex(content)
	if loc == nil {
		return "", errors.NewRuntimeError(
			"no insertion point found: no line starting with a digit",
			"Add an initial version line to the Changes file, e.g. '0.01 2020-01-01 (author)'")
	}
	return fmt.Sprintf("%s%s%s", content[:loc[0]], entry, content[loc[0]:]), nil
}
