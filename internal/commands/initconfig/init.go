package initconfig

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thomas-vilte/czcustom/internal/commands/completion_helper"
	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/logger"
	"github.com/thomas-vilte/czcustom/internal/ui"
	"github.com/urfave/cli/v3"
)

type repoLocator interface {
	RepoRoot(ctx context.Context) (string, error)
}

type InitCommandFactory struct {
	repo repoLocator
	out  io.Writer
}

func NewInitCommandFactory(repo repoLocator, out io.Writer) *InitCommandFactory {
	return &InitCommandFactory{repo: repo, out: out}
}

func (f *InitCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Settings) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("init_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("init_force_flag_usage", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(t),
	}
}

// createAction writes the example configuration at the repository root, or
// in the working directory outside a repository.
func (f *InitCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		dir, err := f.repo.RepoRoot(ctx)
		if err != nil {
			logger.Debug(ctx, "not in a repository, using working directory", "error", err)
			if dir, err = os.Getwd(); err != nil {
				return fmt.Errorf("error getting working directory: %w", err)
			}
		}

		path, err := config.WriteExample(dir, command.Bool("force"))
		if err != nil {
			return err
		}

		ui.PrintSuccess(f.out, t.GetMessage("init_created", 0, map[string]interface{}{"Path": path}))
		return nil
	}
}
