package changes

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var entryDate = time.Date(2020, 2, 2, 12, 0, 0, 0, time.UTC)

func TestEntry_Render_SingleBullet(t *testing.T) {
	entry := Entry{
		Version:   "1.01",
		Date:      entryDate,
		Author:    "Alice",
		Messages:  []string{"Fix the frobnicator."},
		WrapWidth: 70,
	}

	expected := "1.01    2020-02-02 (Alice)\n" +
		"\n" +
		"      - Fix the frobnicator.\n" +
		"\n"
	assert.Equal(t, expected, entry.Render())
}

func TestEntry_Render_MultipleBullets(t *testing.T) {
	entry := Entry{
		Version:   "0.2",
		Date:      entryDate,
		Author:    "Bob",
		Messages:  []string{"Add widgets.", "Remove sprockets."},
		WrapWidth: 70,
	}

	out := entry.Render()
	assert.True(t, strings.HasPrefix(out, "0.2     2020-02-02 (Bob)\n\n"))
	assert.Contains(t, out, "      - Add widgets.\n\n")
	assert.Contains(t, out, "      - Remove sprockets.\n\n")
	assert.True(t, strings.HasSuffix(out, "\n\n"))
}

func TestEntry_Render_HeaderOnly(t *testing.T) {
	entry := Entry{Version: "1.24", Date: entryDate, Author: "Carol"}

	assert.Equal(t, "1.24    2020-02-02 (Carol)\n\n", entry.Render())
}

func TestEntry_Render_WrapsLongMessages(t *testing.T) {
	entry := Entry{
		Version:   "1.1",
		Date:      entryDate,
		Author:    "Dee",
		Messages:  []string{"This commit message is definitely long enough to need wrapping onto a second line."},
		WrapWidth: 40,
	}

	out := entry.Render()
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[2], "      - "))
	assert.True(t, strings.HasPrefix(lines[3], "        "))
	for _, line := range lines[2:] {
		assert.LessOrEqual(t, len(line), 40, "line %q exceeds wrap width", line)
	}
}

func TestEntry_Render_WideVersionKeepsSeparator(t *testing.T) {
	entry := Entry{Version: "10.20.300", Date: entryDate, Author: "E"}

	assert.Equal(t, "10.20.300 2020-02-02 (E)\n\n", entry.Render())
}

func TestEntry_Render_WrapDisabled(t *testing.T) {
	msg := strings.Repeat("word ", 30) + "end."
	entry := Entry{Version: "1.0", Date: entryDate, Author: "F", Messages: []string{msg}}

	out := entry.Render()
	assert.Contains(t, out, "      - "+msg+"\n")
}

func TestPadVersion(t *testing.T) {
	tests := map[string]struct {
		version  string
		expected string
	}{
		"short version padded": {"1.01", "1.01    "},
		"placeholder padded":   {"???", "???     "},
		"exactly column width": {"1.23.456", "1.23.456 "},
		"wider than column":    {"10.20.300", "10.20.300 "},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, padVersion(tc.version))
		})
	}
}
