package config

import (
	"context"

	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newEditCommand(t *i18n.Translations, settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:   "edit",
		Usage:  t.GetMessage("config_edit_usage", 0, nil),
		Action: c.editSettingsAction(settings),
	}
}

func (c *ConfigCommandFactory) editSettingsAction(settings *config.Settings) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		editor, err := ui.ResolveEditor(settings.Editor)
		if err != nil {
			return err
		}

		status, err := c.newEditor(editor).Edit(ctx, settings.PathFile)
		if err != nil {
			return err
		}
		if status != 0 {
			return errors.ErrEditorFailed.WithContext("status", status).WithContext("path", settings.PathFile)
		}

		if _, err := config.LoadSettings(settings.PathFile); err != nil {
			return errors.ErrSettings.WithError(err).WithContext("path", settings.PathFile)
		}
		return nil
	}
}
