package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// changes_file: empty means search Changes, ChangeLog, CHANGES,
		// CHANGELOG in priority order.
		"changes_file": "",
		// metadata_file: the dist.ini version line drives version bumps.
		"metadata_file": "dist.ini",
		// commits: how many recent commit messages become bullets.
		"commits": 1,
		// skip: most recent commits to skip before collecting.
		"skip": 0,
		// author: explicit author override (empty = resolve via git/env).
		"author": "",
		// wrap_width: total bullet line width, 0 disables wrapping.
		"wrap_width": 70,
	}
}

// GetDefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# bumpchanges configuration

changes_file: ""        # Target file (empty = search Changes, ChangeLog, CHANGES, CHANGELOG)
metadata_file: dist.ini # Metadata file carrying the 'version = ...' line
commits: 1              # Number of recent commit messages to collect
skip: 0                 # Most recent commits to skip before collecting
author: ""              # Explicit author (empty = git user.name / BUMPCHANGES_AUTHOR)
wrap_width: 70          # Bullet wrap width (0 = no wrapping)
`
}
