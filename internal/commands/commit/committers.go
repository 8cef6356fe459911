package commit

import (
	"context"
	"fmt"
	"io"

	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/ui"
)

// spinnerCommitter creates the git commit behind a spinner.
type spinnerCommitter struct {
	git gitService
	out io.Writer
	t   *i18n.Translations
}

func (c *spinnerCommitter) CreateCommit(ctx context.Context, message string) error {
	return ui.WithSpinner(c.out,
		c.t.GetMessage("session.creating_commit", 0, nil),
		c.t.GetMessage("session.committed", 0, nil),
		func() error {
			return c.git.CreateCommit(ctx, message)
		})
}

// dryRunCommitter prints the message instead of committing it.
type dryRunCommitter struct {
	out io.Writer
	t   *i18n.Translations
}

func (c *dryRunCommitter) CreateCommit(_ context.Context, message string) error {
	ui.PrintInfo(c.out, c.t.GetMessage("session.dry_run", 0, nil))
	_, err := fmt.Fprintf(c.out, "%s\n", message)
	return err
}
