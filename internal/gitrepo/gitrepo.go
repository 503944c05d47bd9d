// Package gitrepo provides the real repository context for bumpchanges.
// It uses the go-git library to detect the enclosing repository and shells
// out to the git CLI for the two commands the update needs: log retrieval
// and the configured user name.
package gitrepo

import (
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Context resolves ambient repository state from a working directory inside
// a git repository. It implements changes.RepoContext.
type Context struct {
	// dir is the directory git commands run in and globs resolve against.
	dir string
}

// New creates a Context for the given directory ("" means the current
// working directory). It fails when the directory is not inside a git
// repository.
func New(dir string) (*Context, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	if _, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	}); err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	return &Context{dir: dir}, nil
}

// Dir returns the working directory the context operates in.
func (c *Context) Dir() string {
	return c.dir
}

// Log returns the raw 'git log' output for the last count commits,
// skipping the skip most recent ones.
func (c *Context) Log(count, skip int) (string, error) {
	args := []string{"log", "-n", strconv.Itoa(count)}
	if skip > 0 {
		args = append(args, "--skip="+strconv.Itoa(skip))
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = c.dir

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running git log: %w%s", err, exitStderr(err))
	}
	return string(output), nil
}

// parenSuffix matches a trailing parenthetical in a configured user name,
// e.g. "Alice Example (work)".
var parenSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// UserName returns the configured git user name with any trailing
// parenthetical suffix stripped. An unset user.name is reported as such;
// a git command that could not run at all keeps its own error.
func (c *Context) UserName() (string, error) {
	cmd := exec.Command("git", "config", "user.name")
	cmd.Dir = c.dir

	output, err := cmd.Output()
	if err != nil {
		// git config exits non-zero when the key is unset; anything else
		// (git missing, unusable directory) never produces an ExitError.
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return "", fmt.Errorf("running git config: %w", err)
		}
		return "", fmt.Errorf("git user.name is not set")
	}

	name := stripParenthetical(string(output))
	if name == "" {
		return "", fmt.Errorf("git user.name is not set")
	}
	return name, nil
}

// GlobExists reports whether any file matching the pattern exists in the
// working directory.
func (c *Context) GlobExists(pattern string) bool {
	matches, err := filepath.Glob(filepath.Join(c.dir, pattern))
	return err == nil && len(matches) > 0
}

// Getenv returns the value of the named environment variable.
func (c *Context) Getenv(key string) string {
	return os.Getenv(key)
}

// stripParenthetical trims whitespace and removes a trailing "(...)" from
// a user display name.
func stripParenthetical(name string) string {
	return strings.TrimSpace(parenSuffix.ReplaceAllString(strings.TrimSpace(name), ""))
}

// exitStderr extracts captured stderr from an exec error for diagnostics.
func exitStderr(err error) string {
	if exitErr, ok := err.(*exec.ExitError); ok {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return ": " + msg
		}
	}
	return ""
}
