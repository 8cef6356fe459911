// Package session drives one interactive commit: it asks the prompts issued
// by the sequencer, records the answers, composes the message and hands the
// confirmation decision to the controller.
package session

import (
	"context"
	"io"

	"github.com/thomas-vilte/czcustom/internal/answers"
	"github.com/thomas-vilte/czcustom/internal/composer"
	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/confirm"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/logger"
	"github.com/thomas-vilte/czcustom/internal/models"
	"github.com/thomas-vilte/czcustom/internal/ports"
	"github.com/thomas-vilte/czcustom/internal/prompt"
	"github.com/thomas-vilte/czcustom/internal/ui"
)

type Session struct {
	cfg      *config.Model
	prompter ports.Prompter
	ctrl     *confirm.Controller
	out      io.Writer
	trans    *i18n.Translations

	state   models.SessionState
	history []models.SessionState
}

func New(cfg *config.Model, prompter ports.Prompter, ctrl *confirm.Controller, out io.Writer, t *i18n.Translations) *Session {
	return &Session{
		cfg:      cfg,
		prompter: prompter,
		ctrl:     ctrl,
		out:      out,
		trans:    t,
	}
}

// State returns the current state.
func (s *Session) State() models.SessionState {
	return s.state
}

// History returns every state the session went through, in order.
func (s *Session) History() []models.SessionState {
	out := make([]models.SessionState, len(s.history))
	copy(out, s.history)
	return out
}

// Run asks all prompts and resolves the confirmation. Prompter and composer
// errors abort the session and are returned as is.
func (s *Session) Run(ctx context.Context) (models.Outcome, error) {
	s.transition(ctx, models.StateCollectingBase)
	ui.PrintInfo(s.out, s.trans.GetMessage("session.line_limit_notice", 0, nil))

	seq := prompt.NewSequencer(s.cfg)
	collector := answers.NewCollector()

	var (
		message  string
		decision models.Decision
	)

	for {
		spec, ok := seq.Next()
		if !ok {
			break
		}

		switch {
		case spec.Kind == models.PromptConfirm:
			s.transition(ctx, models.StateConfirming)
			composed, err := composer.Compose(collector.Snapshot(), s.cfg)
			if err != nil {
				s.transition(ctx, models.StateAborted)
				return models.Outcome{}, err
			}
			message = composed
			s.ctrl.Preview(message)
		case spec.Key == models.KeyFooter:
			s.transition(ctx, models.StateFooter)
		case s.state == models.StateTypeChosen && spec.Key != models.KeyScope && spec.Key != models.KeySubject:
			s.transition(ctx, models.StateExpanding)
		}

		value, err := s.prompter.Ask(ctx, spec)
		if err != nil {
			s.transition(ctx, models.StateAborted)
			return models.Outcome{}, err
		}

		stored := value
		if spec.Format != nil {
			stored = composer.FormatSection(*spec.Format, value)
		}
		if err := collector.Record(spec.Key, stored); err != nil {
			s.transition(ctx, models.StateAborted)
			return models.Outcome{}, err
		}
		logger.Debug(ctx, "answer recorded", "key", spec.Key)

		expanded, err := seq.OnAnswer(spec.Key, value)
		if err != nil {
			s.transition(ctx, models.StateAborted)
			return models.Outcome{}, err
		}

		switch spec.Key {
		case models.KeyType:
			logger.Debug(ctx, "type expanded", "type", value, "prompts", len(expanded))
			s.transition(ctx, models.StateTypeChosen)
		case models.KeyConfirmCommit:
			decision = models.Decision(value)
		}
	}

	if decision == models.DecisionEdit {
		s.transition(ctx, models.StateEditing)
	}

	outcome, err := s.ctrl.Resolve(ctx, decision, message)
	if err != nil {
		s.transition(ctx, models.StateAborted)
		return models.Outcome{}, err
	}

	if outcome.Committed {
		s.transition(ctx, models.StateCommitting)
	} else {
		s.transition(ctx, models.StateAborted)
	}
	return outcome, nil
}

func (s *Session) transition(ctx context.Context, to models.SessionState) {
	if s.state == to {
		return
	}
	logger.Debug(ctx, "session state changed", "from", string(s.state), "to", string(to))
	s.state = to
	s.history = append(s.history, to)
}
