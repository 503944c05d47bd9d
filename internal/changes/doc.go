// Package changes implements the core Changes-file update for bumpchanges.
//
// This package implements:
//   - Changes-file location from a fixed candidate list
//   - Next-version derivation from dotted numeric version strings
//   - Commit-log splitting and message cleanup
//   - Release-entry rendering (header plus word-wrapped bullets)
//   - Splicing the entry into the existing file content
//
// All access to ambient repository state (git log output, the configured
// user name, marker files, environment variables) goes through the
// RepoContext interface so the formatting and incrementing logic stays
// pure and testable without spawning processes.
package changes
