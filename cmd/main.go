package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/thomas-vilte/czcustom/internal/commands/commit"
	"github.com/thomas-vilte/czcustom/internal/commands/completion"
	configcmd "github.com/thomas-vilte/czcustom/internal/commands/config"
	"github.com/thomas-vilte/czcustom/internal/commands/initconfig"
	"github.com/thomas-vilte/czcustom/internal/commands/registry"
	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/git"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/logger"
	"github.com/thomas-vilte/czcustom/internal/ui"
	"github.com/thomas-vilte/czcustom/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		ui.StopActiveSpinner()
		ui.HandleAppError(os.Stderr, err, translations)
		stop()
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	logger.Initialize(false, false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not get the user home directory: %w", err)
	}

	settings, err := config.LoadSettings(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(config.GetLocaleConfig(settings.Language), "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	gitService := git.NewGitService("")

	registerCommand := registry.NewRegistry(settings, translations)

	if err := registerCommand.Register("commit", commit.NewCommitCommandFactory(gitService)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("init", initconfig.NewInitCommandFactory(gitService, os.Stdout)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("completion", completion.NewCompletionCommandFactory()); err != nil {
		return nil, nil, err
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	// Running without a subcommand starts a commit session.
	rootCommit := commit.NewCommitCommandFactory(gitService)

	return &cli.Command{
		Name:                  "czcustom",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Flags:                 rootCommit.Flags(translations),
		Action:                rootCommit.Action(settings, translations),
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
