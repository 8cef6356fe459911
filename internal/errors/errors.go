// Package errors defines the typed errors shared by the composer, the config
// loader and the git and editor adapters.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType groups errors by the collaborator that raised them.
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeGit           ErrorType = "GIT"
	TypeEditor        ErrorType = "EDITOR"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError is a categorized error. Sentinels are never mutated; the With*
// methods return copies.
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Type, e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, " (%v)", e.Err)
	}
	if path := e.contextString("path"); path != "" {
		fmt.Fprintf(&b, " [%s]", path)
	}
	if key := e.contextString("key"); key != "" {
		fmt.Fprintf(&b, " key=%s", key)
	}
	if stderr := e.contextString("stderr"); stderr != "" {
		fmt.Fprintf(&b, " - %s", stderr)
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError with the same type and message, so copies made by
// the With* methods still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError returns a copy wrapping err.
func (e *AppError) WithError(err error) *AppError {
	c := e.clone()
	c.Err = err
	return c
}

// WithContext returns a copy with key set in its context.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	c := e.clone()
	c.Context = make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		c.Context[k] = v
	}
	c.Context[key] = value
	return c
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	c := e.clone()
	c.Suggestion = suggestion
	return c
}

func (e *AppError) clone() *AppError {
	c := *e
	return &c
}

func (e *AppError) contextString(key string) string {
	if v, ok := e.Context[key]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// TypeOf returns the category of the first AppError in err's chain.
func TypeOf(err error) (ErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return "", false
}

// Configuration errors
var (
	ErrConfigNotFound = NewAppError(TypeConfiguration, "No commit configuration found", nil).
				WithSuggestion("Create one in your repository: czcustom init")

	ErrConfigRead = NewAppError(TypeConfiguration, "Failed to read commit configuration", nil).
			WithSuggestion("Check the file exists and you have read permissions")

	ErrConfigParse = NewAppError(TypeConfiguration, "Commit configuration is malformed", nil).
			WithSuggestion("Validate the file syntax (TOML or YAML)")

	ErrConfigFormat = NewAppError(TypeConfiguration, "Unsupported commit configuration format", nil).
			WithSuggestion("Use a .toml, .yaml or .yml file")

	ErrConfigMissingKey = NewAppError(TypeConfiguration, "Commit configuration is missing a required section", nil).
				WithSuggestion("Declare both [messages] and [body] sections, they may be empty")

	ErrNoTypes = NewAppError(TypeConfiguration, "Commit configuration declares no commit types", nil).
			WithSuggestion("Add at least one [[types]] entry with a value and a name")

	ErrInvalidType = NewAppError(TypeConfiguration, "Commit type entry is invalid", nil).
			WithSuggestion("Every type needs a non-empty, unique value")

	ErrConfigExists = NewAppError(TypeConfiguration, "Commit configuration already exists", nil).
			WithSuggestion("Use --force to overwrite it")

	ErrSettings = NewAppError(TypeConfiguration, "User settings are invalid", nil).
			WithSuggestion("Inspect them with: czcustom config show")
)

// Internal errors
var (
	ErrUnknownType = NewAppError(TypeInternal, "Commit type is not declared in the configuration", nil)

	ErrEmptySubject = NewAppError(TypeInternal, "Commit subject is empty", nil)

	ErrUnexpectedAnswer = NewAppError(TypeInternal, "Answer does not belong to any issued prompt", nil)

	ErrInvalidDecision = NewAppError(TypeInternal, "Confirmation decision is not one of yes, no or edit", nil)

	ErrInterrupted = NewAppError(TypeInternal, "Prompt interrupted", nil)
)

// Editor errors
var (
	ErrNoEditor = NewAppError(TypeEditor, "No editor available", nil).
			WithSuggestion("Set one with: czcustom config set-editor <command> or export EDITOR")

	ErrEditorFailed = NewAppError(TypeEditor, "Editor exited with an error, edits discarded", nil)

	ErrTempFile = NewAppError(TypeEditor, "Failed to prepare the message file for editing", nil)
)

// Git errors
var (
	ErrNoChanges = NewAppError(TypeGit, "No staged changes detected", nil).
			WithSuggestion("Stage your changes first with: git add <files>")

	ErrNotRepository = NewAppError(TypeGit, "Not inside a git repository", nil).
				WithSuggestion("Run the command from a repository or initialize one with: git init")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")
)
