// Package cli implements the bumpchanges command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/changetools/bumpchanges/internal/changes"
	"github.com/changetools/bumpchanges/internal/config"
	"github.com/changetools/bumpchanges/internal/errors"
	"github.com/changetools/bumpchanges/internal/gitrepo"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configFlag     string
	fileFlag       string
	metadataFlag   string
	commitsFlag    int
	skipFlag       int
	authorFlag     string
	noChangesFlag  bool
	dryRunFlag     bool
	initConfigFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "bumpchanges",
	Short: "Add a release entry to a Changes file from recent commits",
	Long: `bumpchanges synthesizes a new release entry from recent git commit
messages and inserts it at the top of the project's Changes file.

When a metadata file (dist.ini by default) declares a version, the next
version is derived from it and the metadata file is bumped in place;
otherwise the entry carries a placeholder version.

Examples:
  bumpchanges                  # One commit, auto-located Changes file
  bumpchanges --commits 3      # Collect the last three commits
  bumpchanges --skip 1         # Skip the most recent commit
  bumpchanges --no-changes     # Release without functional changes
  bumpchanges --dry-run        # Print the entry without writing`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUpdate,
}

func init() {
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Project config file (default .bumpchanges.yml)")
	rootCmd.Flags().StringVar(&fileFlag, "file", "", "Changes file (default: first of Changes, ChangeLog, CHANGES, CHANGELOG)")
	rootCmd.Flags().StringVar(&metadataFlag, "metadata", "", "Metadata file carrying the version line (default dist.ini)")
	rootCmd.Flags().IntVar(&commitsFlag, "commits", 0, "Number of recent commit messages to collect (default 1)")
	rootCmd.Flags().IntVar(&skipFlag, "skip", 0, "Most recent commits to skip before collecting")
	rootCmd.Flags().StringVar(&authorFlag, "author", "", "Entry author (default: resolved from git or BUMPCHANGES_AUTHOR)")
	rootCmd.Flags().BoolVar(&noChangesFlag, "no-changes", false, "Mark the release as having no functional changes")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print the entry without writing any file")
	rootCmd.Flags().BoolVar(&initConfigFlag, "init-config", false, "Write a commented starter config file and exit")
}

// newRepoContext is swapped in tests to avoid spawning git.
var newRepoContext = func() (changes.RepoContext, error) {
	return gitrepo.New("")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if initConfigFlag {
		return initConfig(cmd)
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{ProjectConfigPath: configFlag})
	if err != nil {
		return errors.Wrap(err, errors.Configuration,
			"Check the config file syntax with a YAML linter",
			"See 'bumpchanges --help' for available keys")
	}

	opts := optionsFromConfig(cmd, cfg)

	repo, err := newRepoContext()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Prerequisite, "opening repository",
			"Run bumpchanges inside a git working copy")
	}

	result, err := changes.Update(repo, opts)
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			return cliErr
		}
		return errors.Wrap(err, errors.Runtime)
	}

	if opts.DryRun {
		fmt.Fprint(cmd.OutOrStdout(), result.Entry)
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s entry to %s\n",
		green("✓"), result.Version, result.ChangesFile)
	if result.MetadataBumped {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Bumped version in %s\n",
			green("✓"), cfg.MetadataFile)
	}

	return nil
}

// initConfig writes a commented starter config file at the --config path
// (default .bumpchanges.yml). It refuses to overwrite an existing file.
func initConfig(cmd *cobra.Command) error {
	path := configFlag
	if path == "" {
		path = config.ProjectConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		return errors.NewConfigError(
			fmt.Sprintf("config file %s already exists", path),
			"Edit it in place, or remove it and rerun --init-config")
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing "+path)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", green("✓"), path)
	return nil
}

// optionsFromConfig merges config values with explicitly set flags.
// Flags win only when the user changed them.
func optionsFromConfig(cmd *cobra.Command, cfg *config.Configuration) changes.Options {
	opts := changes.Options{
		ChangesFile:  cfg.ChangesFile,
		MetadataFile: cfg.MetadataFile,
		Commits:      cfg.Commits,
		Skip:         cfg.Skip,
		Author:       cfg.Author,
		WrapWidth:    cfg.WrapWidth,
		NoChanges:    noChangesFlag,
		DryRun:       dryRunFlag,
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		opts.ChangesFile = fileFlag
	}
	if flags.Changed("metadata") {
		opts.MetadataFile = metadataFlag
	}
	if flags.Changed("commits") {
		opts.Commits = commitsFlag
	}
	if flags.Changed("skip") {
		opts.Skip = skipFlag
	}
	if flags.Changed("author") {
		opts.Author = authorFlag
	}

	return opts
}

// Execute runs the root command and maps failures to exit codes.
// Structured errors are rendered with category and remediation steps.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
			return exitCodeFor(cliErr.Category)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitSuccess
}
