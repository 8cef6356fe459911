package regex

import "regexp"

var (
	// IssuePlaceholder is the run of '#' in an issue link template.
	IssuePlaceholder = regexp.MustCompile(`#+`)

	// ConventionalHeader matches `type(scope): subject` and `type: subject`.
	ConventionalHeader = regexp.MustCompile(`^([^\s():]+)(\(([^)]*)\))?(!)?: (.+)$`)
)
