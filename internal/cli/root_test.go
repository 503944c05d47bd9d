package cli

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changetools/bumpchanges/internal/changes"
	"github.com/changetools/bumpchanges/internal/config"
	"github.com/changetools/bumpchanges/internal/errors"
)

// fakeRepo implements changes.RepoContext for command tests.
type fakeRepo struct {
	log     string
	user    string
	userErr error
	markers bool
	env     map[string]string
}

func (f *fakeRepo) Log(count, skip int) (string, error) { return f.log, nil }
func (f *fakeRepo) UserName() (string, error)           { return f.user, f.userErr }
func (f *fakeRepo) GlobExists(pattern string) bool      { return f.markers }
func (f *fakeRepo) Getenv(key string) string            { return f.env[key] }

// runRoot executes the root command with a fake repo context in a temp
// working directory, returning captured stdout.
func runRoot(t *testing.T, repo changes.RepoContext, dir string, args ...string) (string, error) {
	t.Helper()

	orig := newRepoContext
	newRepoContext = func() (changes.RepoContext, error) { return repo, nil }
	t.Cleanup(func() { newRepoContext = orig })
	t.Cleanup(resetFlags)
	chdir(t, dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// chdir changes the working directory for the duration of the test.
// It stands in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

// resetFlags restores flag defaults so tests don't leak state.
func resetFlags() {
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}

func writeChanges(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Changes"),
		[]byte("1.00 2020-01-01 (X)\n\n"), 0o644))
	return dir
}

func TestRoot_RegistersFlags(t *testing.T) {
	for _, name := range []string{"config", "file", "metadata", "commits", "skip", "author", "no-changes", "dry-run", "init-config"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func TestRoot_UpdateWritesEntry(t *testing.T) {
	dir := writeChanges(t)
	repo := &fakeRepo{log: "Fix the frobnicator"}

	out, err := runRoot(t, repo, dir, "--author", "Alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Added ??? entry to Changes")

	data, err := os.ReadFile(filepath.Join(dir, "Changes"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "      - Fix the frobnicator.\n")
	assert.Contains(t, string(data), "1.00 2020-01-01 (X)\n")
}

func TestRoot_MetadataBump(t *testing.T) {
	dir := writeChanges(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dist.ini"),
		[]byte("version = 1.00\n"), 0o644))
	repo := &fakeRepo{log: "Fix things"}

	out, err := runRoot(t, repo, dir, "--author", "Alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 1.01 entry to Changes")
	assert.Contains(t, out, "Bumped version in dist.ini")

	data, err := os.ReadFile(filepath.Join(dir, "dist.ini"))
	require.NoError(t, err)
	assert.Equal(t, "version = 1.01\n", string(data))
}

func TestRoot_DryRunPrintsEntryWithoutWriting(t *testing.T) {
	dir := writeChanges(t)
	repo := &fakeRepo{log: "Fix things"}

	out, err := runRoot(t, repo, dir, "--dry-run", "--author", "Alice")
	require.NoError(t, err)
	assert.Contains(t, out, "      - Fix things.\n")
	assert.NotContains(t, out, "Added")

	data, err := os.ReadFile(filepath.Join(dir, "Changes"))
	require.NoError(t, err)
	assert.Equal(t, "1.00 2020-01-01 (X)\n\n", string(data))
}

func TestRoot_MarkerProjectIgnoresAuthorEnv(t *testing.T) {
	// A *.project marker demands a configured git user name; the author env
	// var is only the no-marker fallback and must not rescue this run.
	dir := writeChanges(t)
	t.Setenv("BUMPCHANGES_AUTHOR", "Env Author")
	repo := &fakeRepo{
		log:     "Fix things",
		markers: true,
		userErr: stderrors.New("git user.name is not set"),
	}

	_, err := runRoot(t, repo, dir)
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Configuration, cliErr.Category)

	data, err := os.ReadFile(filepath.Join(dir, "Changes"))
	require.NoError(t, err)
	assert.Equal(t, "1.00 2020-01-01 (X)\n\n", string(data))
}

func TestRoot_InitConfigWritesTemplate(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, &fakeRepo{}, dir, "--init-config")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote .bumpchanges.yml")

	data, err := os.ReadFile(filepath.Join(dir, ".bumpchanges.yml"))
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultConfigTemplate(), string(data))
}

func TestRoot_InitConfigRefusesExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bumpchanges.yml"),
		[]byte("commits: 2\n"), 0o644))

	_, err := runRoot(t, &fakeRepo{}, dir, "--init-config")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Configuration, cliErr.Category)
}

func TestRoot_MissingChangesFile(t *testing.T) {
	_, err := runRoot(t, &fakeRepo{log: "x"}, t.TempDir())
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	_, err := runRoot(t, &fakeRepo{}, writeChanges(t), "unexpected")
	require.Error(t, err)
}

func TestExitCodeFor(t *testing.T) {
	tests := map[string]struct {
		category errors.ErrorCategory
		expected int
	}{
		"argument":      {errors.Argument, ExitInvalidArguments},
		"configuration": {errors.Configuration, ExitConfigError},
		"prerequisite":  {errors.Prerequisite, ExitMissingPrerequisites},
		"format":        {errors.Format, ExitFormatError},
		"runtime":       {errors.Runtime, ExitFailure},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, exitCodeFor(tc.category))
		})
	}
}
