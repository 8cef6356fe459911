// Package prompt decides which question comes next. The first three prompts
// are fixed; the type answer expands the rest of the sequence.
package prompt

import (
	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/models"
)

type Sequencer struct {
	cfg      *config.Model
	queue    []models.PromptSpec
	issued   map[string]bool
	answered map[string]bool
	done     bool
}

// NewSequencer queues the initial prompts: type, scope (when applicable) and
// subject.
func NewSequencer(cfg *config.Model) *Sequencer {
	s := &Sequencer{
		cfg:      cfg,
		issued:   make(map[string]bool),
		answered: make(map[string]bool),
	}

	s.enqueue(typePrompt(cfg))
	if scope, ok := scopePrompt(cfg); ok {
		s.enqueue(scope)
	}
	s.enqueue(subjectPrompt(cfg))
	return s
}

// Next pops the next prompt. It returns false when nothing is pending.
func (s *Sequencer) Next() (models.PromptSpec, bool) {
	if len(s.queue) == 0 {
		return models.PromptSpec{}, false
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next, true
}

// Done reports whether the confirmation answer has been received.
func (s *Sequencer) Done() bool {
	return s.done
}

// OnAnswer must be called once per answer. The type answer returns and queues
// the prompts it expands to; every other answer returns none.
func (s *Sequencer) OnAnswer(key, value string) ([]models.PromptSpec, error) {
	if s.done || !s.issued[key] || s.answered[key] {
		return nil, errors.ErrUnexpectedAnswer.WithContext("key", key)
	}
	s.answered[key] = true

	switch key {
	case models.KeyType:
		if !s.cfg.HasType(value) {
			return nil, errors.ErrUnknownType.WithContext("type", value)
		}
		expanded := s.expand(value)
		s.enqueue(expanded...)
		return expanded, nil
	case models.KeyConfirmCommit:
		s.done = true
		s.queue = nil
	}
	return nil, nil
}

func (s *Sequencer) expand(typeValue string) []models.PromptSpec {
	var prompts []models.PromptSpec

	if tmpl, ok := s.cfg.Issue(typeValue); ok {
		prompts = append(prompts, issuePrompt(tmpl))
	}

	if sections, ok := s.cfg.Sections(typeValue); ok {
		for _, section := range sections {
			prompts = append(prompts, sectionPrompt(section))
		}
	} else {
		prompts = append(prompts, bodyPrompt(s.cfg))
	}

	if s.cfg.AllowsBreaking(typeValue) {
		prompts = append(prompts, breakingPrompt(s.cfg))
	}

	return append(prompts, footerPrompt(s.cfg), confirmPrompt(s.cfg))
}

func (s *Sequencer) enqueue(prompts ...models.PromptSpec) {
	for _, p := range prompts {
		s.issued[p.Key] = true
		s.queue = append(s.queue, p)
	}
}
