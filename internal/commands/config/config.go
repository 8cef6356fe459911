package config

import (
	"io"
	"os"

	"github.com/thomas-vilte/czcustom/internal/commands/completion_helper"
	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/ports"
	"github.com/thomas-vilte/czcustom/internal/ui"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	out       io.Writer
	newEditor func(command string) ports.Editor
}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{
		out: os.Stdout,
		newEditor: func(command string) ports.Editor {
			return ui.NewExternalEditor(command)
		},
	}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:          "config",
		Usage:         t.GetMessage("config_command_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Commands: []*cli.Command{
			c.newShowCommand(t, settings),
			c.newSetLangCommand(t, settings),
			c.newSetEditorCommand(t, settings),
			c.newEditCommand(t, settings),
		},
	}
}
