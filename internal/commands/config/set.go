package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<" + strings.Join(config.SupportedLanguages(), "|") + ">",
		ShellComplete: func(_ context.Context, cmd *cli.Command) {
			for _, lang := range config.SupportedLanguages() {
				_, _ = fmt.Fprintln(cmd.Root().Writer, lang)
			}
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := strings.ToLower(strings.TrimSpace(command.Args().First()))
			if lang == "" {
				return c.missingArgument(t, "language")
			}
			if !config.IsSupportedLanguage(lang) {
				msg := t.GetMessage("config_invalid_language", 0, map[string]interface{}{"Lang": lang})
				return errors.ErrSettings.WithContext("language", lang).WithSuggestion(msg)
			}

			settings.Language = lang
			if err := c.save(t, settings); err != nil {
				return err
			}
			_ = t.SetLanguage(lang)
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetEditorCommand(t *i18n.Translations, settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "set-editor",
		Usage:     t.GetMessage("config_set_editor_usage", 0, nil),
		ArgsUsage: "<command> [args...]",
		// Editor arguments such as --wait belong to the editor.
		SkipFlagParsing: true,
		Action: func(ctx context.Context, command *cli.Command) error {
			editor := strings.TrimSpace(strings.Join(command.Args().Slice(), " "))
			if editor == "" {
				return c.missingArgument(t, "command")
			}

			settings.Editor = editor
			return c.save(t, settings)
		},
	}
}

func (c *ConfigCommandFactory) save(t *i18n.Translations, settings *config.Settings) error {
	if err := config.SaveSettings(settings); err != nil {
		return errors.ErrSettings.WithError(err).WithContext("path", settings.PathFile)
	}
	ui.PrintSuccess(c.out, t.GetMessage("config_updated", 0, nil))
	return nil
}

func (c *ConfigCommandFactory) missingArgument(t *i18n.Translations, name string) error {
	msg := t.GetMessage("config_missing_argument", 0, map[string]interface{}{"Name": name})
	ui.PrintError(c.out, msg)
	return fmt.Errorf("%s", msg)
}
