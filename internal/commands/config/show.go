package config

import (
	"context"
	"fmt"
	"os"

	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			_, _ = fmt.Fprintf(c.out, "%s\n", ui.Accent.Sprint(t.GetMessage("config_show_title", 0, nil)))

			ui.PrintKeyValue(c.out, t.GetMessage("config_label_language", 0, nil), settings.Language)

			editor := settings.Editor
			if editor == "" {
				editor = t.GetMessage("config_editor_default", 0, nil)
			}
			ui.PrintKeyValue(c.out, t.GetMessage("config_label_editor", 0, nil), editor)
			ui.PrintKeyValue(c.out, t.GetMessage("config_label_settings", 0, nil), settings.PathFile)

			commitConfig := t.GetMessage("config_not_found", 0, nil)
			if wd, err := os.Getwd(); err == nil {
				if path, err := config.Find(wd); err == nil {
					commitConfig = path
				}
			}
			ui.PrintKeyValue(c.out, t.GetMessage("config_label_commit_config", 0, nil), commitConfig)
			return nil
		},
	}
}
