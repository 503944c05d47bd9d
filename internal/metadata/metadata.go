// Package metadata reads and rewrites the version declaration line of a
// project metadata file such as dist.ini. The file content is treated as
// opaque text; the only mutation is a single in-place replacement of the
// `version = ...` line.
package metadata

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrNoVersionLine is returned when the metadata file exists but contains
// no parseable `version = ...` line.
var ErrNoVersionLine = errors.New("no version line found")

// versionLine matches a `version = <value>` declaration at the start of a line.
var versionLine = regexp.MustCompile(`(?m)^version\s*=\s*(\S+)[^\n\r]*`)

// ReadVersion extracts the declared version from the metadata file.
// A missing file is reported with an error wrapping fs.ErrNotExist so
// callers can distinguish it from an unparseable file.
func ReadVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	m := versionLine.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%s: %w", path, ErrNoVersionLine)
	}
	return string(m[1]), nil
}

// BumpVersion rewrites the metadata file's version line in place, leaving
// the rest of the content untouched.
func BumpVersion(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	loc := versionLine.FindIndex(data)
	if loc == nil {
		return fmt.Errorf("%s: %w", path, ErrNoVersionLine)
	}

	var updated []byte
	updated = append(updated, data[:loc[0]]...)
	updated = append(updated, []byte("version = "+version)...)
	updated = append(updated, data[loc[1]:]...)
	if err := os.WriteFile(path, updated, filePerm(path)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// filePerm returns the file's current permissions, defaulting to 0644.
func filePerm(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
