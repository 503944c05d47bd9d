package changes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/changetools/bumpchanges/internal/errors"
)

// VersionPlaceholder is used as the entry version when no metadata file
// supplies a parseable version to increment.
const VersionPlaceholder = "???"

// versionShape matches the three recognized version shapes: a bare integer,
// major.minor, and major.minor.patch.
var versionShape = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?$`)

// NextVersion derives the next version from a dotted numeric version string.
// The trailing segment is incremented by the smallest unit implied by its
// digit width, carrying into earlier segments on overflow, so the result is
// strictly greater and keeps both the segment count and the zero padding:
//
//	"1"     -> "2"
//	"1.23"  -> "1.24"
//	"1.9"   -> "2.0"
//	"1.99"  -> "2.00"
//	"1.2.9" -> "1.3.0"
//
// Any other shape fails with a format error.
func NextVersion(version string) (string, error) {
	m := versionShape.FindStringSubmatch(version)
	if m == nil {
		return "", errors.NewFormatError(
			fmt.Sprintf("unrecognized version format %q", version),
			"Use a dotted numeric version: 1, 1.23, or 1.2.3")
	}

	var segments []string
	for _, seg := range m[1:] {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	out := make([]string, len(segments))
	copy(out, segments)

	for i := len(segments) - 1; i >= 0; i-- {
		width := len(segments[i])
		n, err := strconv.Atoi(segments[i])
		if err != nil {
			return "", errors.NewFormatError(
				fmt.Sprintf("unrecognized version format %q: segment %q is not numeric", version, segments[i]))
		}
		n++

		// The first segment grows freely; later segments carry when the
		// incremented value no longer fits the original digit width.
		if i > 0 && len(strconv.Itoa(n)) > width {
			out[i] = strings.Repeat("0", width)
			continue
		}

		out[i] = fmt.Sprintf("%0*d", width, n)
		return strings.Join(out, "."), nil
	}

	// Unreachable: the first segment never carries.
	return "", errors.NewFormatError(fmt.Sprintf("unrecognized version format %q", version))
}
