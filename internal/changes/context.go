package changes

// RepoContext abstracts the ambient repository state the updater depends on.
// The real implementation (internal/gitrepo) shells out to git; tests supply
// a fake so the core logic runs without external processes.
type RepoContext interface {
	// Log returns the raw output of the version-control log command for the
	// last count commits, skipping the skip most recent ones.
	Log(count, skip int) (string, error)

	// UserName returns the version-control system's configured user display
	// name with any trailing parenthetical suffix removed. It returns an
	// error when no user name is configured.
	UserName() (string, error)

	// GlobExists reports whether any file matching the glob pattern exists
	// in the working directory.
	GlobExists(pattern string) bool

	// Getenv returns the value of the named environment variable.
	Getenv(key string) string
}
