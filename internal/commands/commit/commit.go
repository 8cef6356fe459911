package commit

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/thomas-vilte/czcustom/internal/commands/completion_helper"
	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/confirm"
	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/logger"
	"github.com/thomas-vilte/czcustom/internal/models"
	"github.com/thomas-vilte/czcustom/internal/ports"
	"github.com/thomas-vilte/czcustom/internal/session"
	"github.com/thomas-vilte/czcustom/internal/ui"
	"github.com/urfave/cli/v3"
)

// gitService is the part of the git adapter the command needs.
type gitService interface {
	CreateCommit(ctx context.Context, message string) error
}

type CommitCommandFactory struct {
	gitService gitService
	in         io.Reader
	out        io.Writer
	logOut     io.Writer
	isTerminal func() bool
	newEditor  func(command string) ports.Editor
}

type Option func(*CommitCommandFactory)

// WithIO replaces the terminal streams. Prompts read from in; prompts, preview
// and notices go to out.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(f *CommitCommandFactory) {
		f.in = in
		f.out = out
		f.isTerminal = func() bool { return false }
	}
}

// WithEditor replaces the external editor launcher.
func WithEditor(newEditor func(command string) ports.Editor) Option {
	return func(f *CommitCommandFactory) {
		f.newEditor = newEditor
	}
}

// WithLogOutput sets where diagnostics are written. Defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(f *CommitCommandFactory) {
		f.logOut = w
	}
}

func NewCommitCommandFactory(git gitService, opts ...Option) *CommitCommandFactory {
	f := &CommitCommandFactory{
		gitService: git,
		in:         os.Stdin,
		out:        os.Stdout,
		logOut:     os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		newEditor: func(command string) ports.Editor {
			return ui.NewExternalEditor(command)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations, settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:          "commit",
		Aliases:       []string{"c"},
		Usage:         t.GetMessage("commit_command_usage", 0, nil),
		Flags:         f.createFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(settings, t),
	}
}

// Flags returns the commit flags so the root command can accept them too.
func (f *CommitCommandFactory) Flags(t *i18n.Translations) []cli.Flag {
	return f.createFlags(t)
}

func (f *CommitCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   t.GetMessage("flag_config_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   t.GetMessage("flag_dry_run_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-tui",
			Usage: t.GetMessage("flag_no_tui_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("flag_debug_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: t.GetMessage("flag_verbose_usage", 0, nil),
		},
	}
}

// Action returns the commit action for reuse as the root action.
func (f *CommitCommandFactory) Action(settings *config.Settings, t *i18n.Translations) cli.ActionFunc {
	return f.createAction(settings, t)
}

func (f *CommitCommandFactory) createAction(settings *config.Settings, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		ctx = logger.WithLogger(ctx, logger.New(f.logOut, command.Bool("debug"), command.Bool("verbose")))
		log := logger.FromContext(ctx)

		dryRun := command.Bool("dry-run")
		path, err := resolveConfigPath(command.String("config"))
		if err != nil {
			return err
		}

		cfg, err := config.Load(ctx, path)
		if err != nil {
			return err
		}
		ui.PrintInfo(f.out, t.GetMessage("using_config", 0, map[string]interface{}{"Path": path}))

		log.Info("executing commit command",
			"config", path,
			"types", len(cfg.Types),
			"dry_run", dryRun)

		editorCommand, err := ui.ResolveEditor(settings.Editor)
		if err != nil {
			log.Warn("no editor available, editing will be discarded", "error", err)
		}

		ctrl := confirm.NewController(f.newEditor(editorCommand), f.committer(dryRun, t), f.out, t)
		outcome, err := session.New(cfg, f.prompter(command.Bool("no-tui"), t), ctrl, f.out, t).Run(ctx)
		if err != nil {
			if typ, ok := errors.TypeOf(err); ok {
				log.Debug("session aborted", "type", string(typ), "error", err)
			}
			return err
		}

		log.Info("session finished",
			"committed", outcome.Committed,
			"edited", outcome.Edited,
			"reason", string(outcome.Reason))

		if outcome.Reason == models.AbortEditDiscarded {
			log.Warn("edited message discarded")
		}
		return nil
	}
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error getting working directory: %w", err)
	}
	return config.Find(wd)
}

func (f *CommitCommandFactory) prompter(noTUI bool, t *i18n.Translations) ports.Prompter {
	lines := ui.NewLinePrompter(f.in, f.out, t)
	if noTUI || !f.isTerminal() {
		return lines
	}
	return ui.NewTeaPrompter(lines, f.in, f.out)
}

func (f *CommitCommandFactory) committer(dryRun bool, t *i18n.Translations) ports.Committer {
	if dryRun {
		return &dryRunCommitter{out: f.out, t: t}
	}
	return &spinnerCommitter{git: f.gitService, out: f.out, t: t}
}
