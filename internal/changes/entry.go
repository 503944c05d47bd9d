package changes

import (
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"
)

const (
	// versionColumn is the minimum width of the version column in the
	// header line. Dates and bullet text align under this column.
	versionColumn = 8

	bulletPrefix = "      - "
	bulletIndent = "        "
)

// Entry is one formatted release block: a header line carrying version,
// date and author, followed by one hyphen bullet per commit message.
type Entry struct {
	Version  string
	Date     time.Time
	Author   string
	Messages []string

	// WrapWidth is the total line width bullets are wrapped to.
	// Zero disables wrapping.
	WrapWidth int
}

// Render formats the entry for insertion into a Changes file. The header is
// followed by a blank line, and every bullet is followed by a blank line, so
// a bullet-less entry is still well formed.
func (e Entry) Render() string {
	var sb strings.Builder

	sb.WriteString(padVersion(e.Version))
	sb.WriteString(e.Date.Format("2006-01-02"))
	sb.WriteString(" (")
	sb.WriteString(e.Author)
	sb.WriteString(")\n\n")

	for _, msg := range e.Messages {
		for i, line := range e.bulletLines(msg) {
			if i == 0 {
				sb.WriteString(bulletPrefix)
			} else {
				sb.WriteString(bulletIndent)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// bulletLines word-wraps one message for bullet rendering.
func (e Entry) bulletLines(msg string) []string {
	if e.WrapWidth > len(bulletIndent) {
		msg = wordwrap.WrapString(msg, uint(e.WrapWidth-len(bulletIndent)))
	}
	return strings.Split(msg, "\n")
}

// padVersion left-justifies the version in the version column, keeping at
// least one space before the date for versions wider than the column.
func padVersion(version string) string {
	if len(version) < versionColumn {
		return version + strings.Repeat(" ", versionColumn-len(version))
	}
	return version + " "
}
