package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version, commit, build date, and Go version information for bumpchanges",
	Run: func(cmd *cobra.Command, args []string) {
		if versionPlain {
			printPlainVersion()
			return
		}
		printPrettyVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
}

// printPlainVersion prints a simple version output for scripting.
func printPlainVersion() {
	fmt.Printf("bumpchanges %s\n", Version)
	fmt.Printf("commit: %s\n", truncateCommit(Commit))
	fmt.Printf("built: %s\n", BuildDate)
	fmt.Printf("go: %s\n", runtime.Version())
	fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints a styled version output.
func printPrettyVersion() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("%s %s\n", cyan("bumpchanges"), Version)
	fmt.Printf("  %s %s\n", yellow("Commit:"), truncateCommit(Commit))
	fmt.Printf("  %s  %s\n", yellow("Built:"), BuildDate)
	fmt.Printf("  %s     %s (%s/%s)\n", yellow("Go:"), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// truncateCommit shortens a commit hash if it's too long.
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
