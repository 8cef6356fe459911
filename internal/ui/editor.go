package ui

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/czcustom/internal/errors"
)

// fallbackEditors are tried in order when nothing is configured.
var fallbackEditors = []string{"nano", "vi"}

// ResolveEditor picks the editor command: the preferred one from the user
// settings, then $VISUAL, then $EDITOR, then the first fallback on PATH.
func ResolveEditor(preferred string) (string, error) {
	for _, candidate := range []string{preferred, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate), nil
		}
	}
	for _, name := range fallbackEditors {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", errors.ErrNoEditor
}

// ExternalEditor runs an editor command on a file and waits for it to exit.
// The command may carry arguments, e.g. "code --wait".
type ExternalEditor struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func NewExternalEditor(command string) *ExternalEditor {
	return &ExternalEditor{
		command: command,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// Edit returns the exit status of the editor. A non-zero status is not an
// error; err is set only when the editor could not be run at all.
func (e *ExternalEditor) Edit(ctx context.Context, path string) (int, error) {
	fields := strings.Fields(e.command)
	if len(fields) == 0 {
		return -1, errors.ErrNoEditor
	}

	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.ErrEditorFailed.WithError(err).WithContext("editor", fields[0])
	}
	return 0, nil
}
