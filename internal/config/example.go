package config

import (
	"os"
	"path/filepath"

	"github.com/thomas-vilte/czcustom/internal/errors"
)

// ExampleTOML is the commit configuration written by `czcustom init`.
const ExampleTOML = `# Free-text scope instead of picking one from [[scopes]].
allowCustomScopes = true
# Types that get the BREAKING CHANGE question.
allowBreakingChanges = ["feat", "fix"]

# Commit types offered by the first question. Order is kept.
[[types]]
value = "feat"
name = "feat:     A new feature"

[[types]]
value = "fix"
name = "fix:      A bug fix"

[[types]]
value = "docs"
name = "docs:     Documentation only changes"

[[types]]
value = "style"
name = """style:    Changes that do not affect the meaning of the code
            (white-space, formatting, missing semi-colons, etc)"""

[[types]]
value = "refactor"
name = "refactor: A code change that neither fixes a bug nor adds a feature"

[[types]]
value = "perf"
name = "perf:     A code change that improves performance"

[[types]]
value = "test"
name = "test:     Adding missing tests"

[[types]]
value = "chore"
name = """chore:    Changes to the build process or auxiliary tools
            and libraries such as documentation generation"""

[[types]]
value = "revert"
name = "revert:   Revert to a commit"

[[types]]
value = "WIP"
name = "WIP:      Work in progress"

# Picked from this list unless allowCustomScopes is true.
[[scopes]]
name = "accounts"

[[scopes]]
name = "admin"

[[scopes]]
name = "exampleScope"

# Missing entries fall back to the built-in texts.
[messages]
type = "Select the type of change that you're committing:"
confirmCommit = "Are you sure you want to proceed with the commit above?"

# Body templates per type. Sections are asked in the order written here.
[body.fix.symptom]
prefix = "Problem Description: "
message = "Symptom:"

[body.fix.solution]
prefix = "Solution Description: "
message = "Solution:"

[body.fix.detail]
prefix = "Technical Detail: "
message = "Details:"

[body.feat.description]
prefix = "Description: "
message = "What is the feature aimed for?"

# The run of '#' in link is replaced by the identifier you type.
[issue.fix]
name = "Issue"
message = "Ticket number (optional):"
link = "https://jira.example.com/browse/PROJ-####"
`

// WriteExample writes ExampleTOML into dir and returns the file path.
func WriteExample(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileNames[0])
	if _, err := os.Stat(path); err == nil && !force {
		return "", errors.ErrConfigExists.WithContext("path", path)
	}
	if err := os.WriteFile(path, []byte(ExampleTOML), 0644); err != nil {
		return "", errors.ErrConfigRead.WithError(err).WithContext("path", path)
	}
	return path, nil
}
