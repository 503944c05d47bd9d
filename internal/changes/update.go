package changes

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/changetools/bumpchanges/internal/errors"
	"github.com/changetools/bumpchanges/internal/metadata"
)

const (
	// Marker files classify the project; their mere presence is the signal.
	SpecMarker = "spec.project"
	DataMarker = "data.project"

	// MarkerGlob matches any project-type marker file.
	MarkerGlob = "*.project"

	// AuthorEnvVar supplies the fallback author when no marker file exists.
	AuthorEnvVar = "BUMPCHANGES_AUTHOR"

	// AuthorFallback is used when neither git nor the environment names one.
	AuthorFallback = "unknown"
)

// Options controls a single Changes-file update.
type Options struct {
	// Dir is the working directory files are resolved in ("" means ".").
	Dir string
	// ChangesFile names the target file explicitly; empty triggers the
	// conventional-name search.
	ChangesFile string
	// MetadataFile is the project metadata file carrying the version line.
	// Empty disables version derivation entirely.
	MetadataFile string
	// Commits is the number of log entries to collect; 0 skips retrieval.
	Commits int
	// Skip drops the most recent commits before collecting.
	Skip int
	// NoChanges marks a release without functional changes.
	NoChanges bool
	// Author overrides author resolution when non-empty.
	Author string
	// WrapWidth is the bullet wrap width; 0 disables wrapping.
	WrapWidth int
	// DryRun renders the entry without writing any file.
	DryRun bool
	// Now supplies the entry date; nil means time.Now.
	Now func() time.Time
	// WarnWriter receives non-fatal warnings (default: os.Stderr).
	WarnWriter io.Writer
}

// Result reports what an update produced.
type Result struct {
	// ChangesFile is the resolved path of the mutated file.
	ChangesFile string
	// Version is the version the new entry carries.
	Version string
	// Entry is the rendered entry block.
	Entry string
	// MetadataBumped is true when the metadata file's version line was
	// rewritten alongside the Changes file.
	MetadataBumped bool
}

// Update synthesizes a release entry from recent commit messages and splices
// it at the top of the Changes file, bumping the metadata version line when
// the version was derived from it. The operation is single-pass and aborts
// on the first error with no retries.
func Update(repo RepoContext, opts Options) (*Result, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	path, err := Locate(dir, opts.ChangesFile)
	if err != nil {
		return nil, err
	}

	version, fromMetadata := resolveVersion(dir, opts)

	messages, err := collectMessages(repo, opts)
	if err != nil {
		return nil, err
	}

	author, err := resolveAuthor(repo, opts.Author)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	entry := Entry{
		Version:   version,
		Date:      now(),
		Author:    author,
		Messages:  messages,
		WrapWidth: opts.WrapWidth,
	}.Render()

	result := &Result{ChangesFile: path, Version: version, Entry: entry}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "reading "+path)
	}

	updated, err := Splice(string(content), entry)
	if err != nil {
		return nil, err
	}

	// Nothing is rewritten on a dry run, so MetadataBumped stays false.
	if opts.DryRun {
		return result, nil
	}

	if err := os.WriteFile(path, []byte(updated), filePerm(path)); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "writing "+path)
	}

	if fromMetadata {
		metaPath := filepath.Join(dir, opts.MetadataFile)
		if err := metadata.BumpVersion(metaPath, version); err != nil {
			return nil, errors.WrapWithMessage(err, errors.Runtime, "bumping metadata version")
		}
		result.MetadataBumped = true
	}

	return result, nil
}

// resolveVersion derives the next version from the metadata file, falling
// back to the placeholder token. A missing metadata file is silent; an
// unparseable version line warns and still falls back rather than failing.
func resolveVersion(dir string, opts Options) (version string, fromMetadata bool) {
	if opts.MetadataFile == "" {
		return VersionPlaceholder, false
	}

	metaPath := filepath.Join(dir, opts.MetadataFile)
	current, err := metadata.ReadVersion(metaPath)
	if err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			warnf(opts.WarnWriter, "Warning: %v; using placeholder version\n", err)
		}
		return VersionPlaceholder, false
	}

	next, err := NextVersion(current)
	if err != nil {
		warnf(opts.WarnWriter, "Warning: %s: %v; using placeholder version\n", metaPath, err)
		return VersionPlaceholder, false
	}

	return next, true
}

// collectMessages retrieves and cleans the commit messages for the entry,
// prepending the synthetic no-changes message when requested.
func collectMessages(repo RepoContext, opts Options) ([]string, error) {
	var messages []string

	if opts.Commits > 0 {
		raw, err := repo.Log(opts.Commits, opts.Skip)
		if err != nil {
			return nil, errors.WrapWithMessage(err, errors.Runtime, "retrieving commit log")
		}
		messages = SplitLogMessages(raw)
	}

	if opts.NoChanges {
		messages = append([]string{noChangesMessage(repo)}, messages...)
	}

	return messages, nil
}

// noChangesMessage picks the synthetic message by project classification.
func noChangesMessage(repo RepoContext) string {
	switch {
	case repo.GlobExists(SpecMarker):
		return "No spec changes."
	case repo.GlobExists(DataMarker):
		return "No data changes."
	default:
		return "No functional changes."
	}
}

// resolveAuthor determines the entry author. Marker-file projects require a
// configured git user name; everything else falls back to the environment
// and finally a literal placeholder.
func resolveAuthor(repo RepoContext, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if repo.GlobExists(MarkerGlob) {
		name, err := repo.UserName()
		if err != nil {
			return "", errors.WrapWithMessage(err, errors.Configuration,
				"resolving author",
				`Run 'git config user.name "Your Name"'`)
		}
		return name, nil
	}

	if name := repo.Getenv(AuthorEnvVar); name != "" {
		return name, nil
	}
	return AuthorFallback, nil
}

func warnf(w io.Writer, format string, args ...any) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format, args...)
}

// filePerm returns the file's current permissions, defaulting to 0644.
func filePerm(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
