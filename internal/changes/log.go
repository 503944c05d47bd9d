package changes

import (
	"regexp"
	"strings"
)

// commitBoundary matches the line that starts each block in git log output.
var commitBoundary = regexp.MustCompile(`^commit [0-9a-f]{4,40}\b`)

// SplitLogMessages splits raw version-control log output into individual
// commit messages. Blocks are delimited by the commit-boundary marker;
// Author/Date/Merge header lines are dropped, the four-space body indent is
// stripped, and each message is trimmed and period-terminated. Text before
// the first boundary is treated as a message of its own, so plain pre-split
// input passes through unchanged.
func SplitLogMessages(raw string) []string {
	var messages []string
	var body []string
	inHeader := false

	flush := func() {
		msg := strings.TrimSpace(strings.Join(body, "\n"))
		if msg != "" {
			messages = append(messages, ensurePeriod(msg))
		}
		body = body[:0]
	}

	for _, line := range strings.Split(raw, "\n") {
		if commitBoundary.MatchString(line) {
			flush()
			inHeader = true
			continue
		}
		if inHeader {
			// Header lines run until the first blank line.
			if strings.TrimSpace(line) == "" {
				inHeader = false
			}
			continue
		}
		body = append(body, strings.TrimPrefix(line, "    "))
	}
	flush()

	return messages
}

// ensurePeriod terminates a message with a period when one is absent.
func ensurePeriod(msg string) string {
	if strings.HasSuffix(msg, ".") {
		return msg
	}
	return msg + "."
}
