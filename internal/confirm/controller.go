// Package confirm resolves the final yes/no/edit decision on a composed
// commit message.
package confirm

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/logger"
	"github.com/thomas-vilte/czcustom/internal/models"
	"github.com/thomas-vilte/czcustom/internal/ports"
	"github.com/thomas-vilte/czcustom/internal/regex"
	"github.com/thomas-vilte/czcustom/internal/ui"
)

// Separator frames the message preview.
const Separator = "###--------------------------------------------------------###"

const editFilePattern = "COMMIT_EDITMSG-*.txt"

type Controller struct {
	editor    ports.Editor
	committer ports.Committer
	out       io.Writer
	trans     *i18n.Translations
	tempDir   string
}

type Option func(*Controller)

// WithTempDir sets where the message file for the editor is created. The
// default is os.TempDir.
func WithTempDir(dir string) Option {
	return func(c *Controller) {
		c.tempDir = dir
	}
}

func NewController(editor ports.Editor, committer ports.Committer, out io.Writer, t *i18n.Translations, opts ...Option) *Controller {
	c := &Controller{
		editor:    editor,
		committer: committer,
		out:       out,
		trans:     t,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Preview shows the message framed by Separator lines.
func (c *Controller) Preview(message string) {
	_, _ = fmt.Fprintf(c.out, "\n%s\n%s\n%s\n\n", Separator, message, Separator)
}

// Resolve applies a decision to message. The committer is called at most
// once, and never when the editor fails.
func (c *Controller) Resolve(ctx context.Context, decision models.Decision, message string) (models.Outcome, error) {
	switch decision {
	case models.DecisionNo:
		ui.PrintWarning(c.out, c.trans.GetMessage("session.cancelled", 0, nil))
		return models.Outcome{Message: message, Reason: models.AbortCancelled}, nil

	case models.DecisionYes:
		return c.commit(ctx, message, false)

	case models.DecisionEdit:
		edited, status, ok := c.edit(ctx, message)
		if !ok {
			ui.PrintWarning(c.out, c.trans.GetMessage("session.edit_discarded", 0, map[string]interface{}{
				"Status": status,
			}))
			_, _ = fmt.Fprintf(c.out, "\n%s\n\n", message)
			return models.Outcome{Message: message, Reason: models.AbortEditDiscarded}, nil
		}
		if header, _, _ := strings.Cut(edited, "\n"); !regex.ConventionalHeader.MatchString(header) {
			logger.Warn(ctx, "edited header is not conventional")
			ui.PrintWarning(c.out, c.trans.GetMessage("session.edited_header_warning", 0, nil))
		}
		return c.commit(ctx, edited, true)
	}

	return models.Outcome{}, errors.ErrInvalidDecision.WithContext("decision", string(decision))
}

func (c *Controller) commit(ctx context.Context, message string, edited bool) (models.Outcome, error) {
	if err := c.committer.CreateCommit(ctx, message); err != nil {
		return models.Outcome{}, err
	}
	return models.Outcome{Committed: true, Message: message, Edited: edited}, nil
}

// edit round-trips message through the editor. ok is false when the edit
// must be discarded: temp file failures, a failing or non-zero editor, or an
// empty result.
func (c *Controller) edit(ctx context.Context, message string) (string, int, bool) {
	file, err := os.CreateTemp(c.tempDir, editFilePattern)
	if err != nil {
		logger.Error(ctx, "creating message file", errors.ErrTempFile.WithError(err))
		return "", -1, false
	}
	path := file.Name()
	defer func() {
		_ = os.Remove(path)
	}()

	_, writeErr := file.WriteString(message)
	closeErr := file.Close()
	if writeErr != nil || closeErr != nil {
		logger.Error(ctx, "writing message file", errors.ErrTempFile.WithError(firstErr(writeErr, closeErr)), "path", path)
		return "", -1, false
	}

	status, err := c.editor.Edit(ctx, path)
	if err != nil {
		logger.Error(ctx, "running editor", err, "path", path)
		return "", -1, false
	}
	if status != 0 {
		logger.Warn(ctx, "editor exited with non-zero status", "status", status)
		return "", status, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error(ctx, "reading edited message", errors.ErrTempFile.WithError(err), "path", path)
		return "", -1, false
	}

	edited := strings.TrimSpace(string(data))
	if edited == "" {
		logger.Warn(ctx, "edited message is empty")
		return "", status, false
	}
	return edited, status, true
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
