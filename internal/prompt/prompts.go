package prompt

import (
	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/models"
)

// emptyScope lets a closed scope list stay optional.
const emptyScope = "empty"

func typePrompt(cfg *config.Model) models.PromptSpec {
	choices := make([]models.Choice, 0, len(cfg.Types))
	for _, t := range cfg.Types {
		choices = append(choices, models.Choice{Name: t.Name, Value: t.Value})
	}
	return models.PromptSpec{
		Kind:     models.PromptChoice,
		Key:      models.KeyType,
		Message:  cfg.Messages.Type,
		Choices:  choices,
		Required: true,
	}
}

// scopePrompt returns false when there is nothing to ask: no scopes and no
// custom scopes.
func scopePrompt(cfg *config.Model) (models.PromptSpec, bool) {
	if cfg.AllowCustomScopes {
		return models.PromptSpec{
			Kind:    models.PromptText,
			Key:     models.KeyScope,
			Message: cfg.Messages.CustomScope,
		}, true
	}
	if len(cfg.Scopes) == 0 {
		return models.PromptSpec{}, false
	}

	choices := make([]models.Choice, 0, len(cfg.Scopes)+1)
	for _, s := range cfg.Scopes {
		choices = append(choices, models.Choice{Name: s.Name, Value: s.Name})
	}
	choices = append(choices, models.Choice{Name: emptyScope, Value: ""})

	return models.PromptSpec{
		Kind:    models.PromptChoice,
		Key:     models.KeyScope,
		Message: cfg.Messages.Scope,
		Choices: choices,
	}, true
}

func subjectPrompt(cfg *config.Model) models.PromptSpec {
	return models.PromptSpec{
		Kind:     models.PromptText,
		Key:      models.KeySubject,
		Message:  cfg.Messages.Subject,
		Required: true,
	}
}

func issuePrompt(tmpl config.IssueTemplate) models.PromptSpec {
	return models.PromptSpec{
		Kind:    models.PromptText,
		Key:     models.KeyIssue,
		Message: tmpl.Message,
	}
}

func sectionPrompt(s config.Section) models.PromptSpec {
	return models.PromptSpec{
		Kind:    models.PromptText,
		Key:     models.BodySectionKey(s.Key),
		Message: s.Message,
		Format:  &models.SectionFormat{Prefix: s.Prefix, Postfix: s.Postfix},
	}
}

func bodyPrompt(cfg *config.Model) models.PromptSpec {
	return models.PromptSpec{
		Kind:    models.PromptText,
		Key:     models.KeyBody,
		Message: cfg.Messages.Body,
	}
}

func breakingPrompt(cfg *config.Model) models.PromptSpec {
	return models.PromptSpec{
		Kind:    models.PromptText,
		Key:     models.KeyBreaking,
		Message: cfg.Messages.Breaking,
	}
}

func footerPrompt(cfg *config.Model) models.PromptSpec {
	return models.PromptSpec{
		Kind:    models.PromptText,
		Key:     models.KeyFooter,
		Message: cfg.Messages.Footer,
	}
}

func confirmPrompt(cfg *config.Model) models.PromptSpec {
	return models.PromptSpec{
		Kind:     models.PromptConfirm,
		Key:      models.KeyConfirmCommit,
		Message:  cfg.Messages.ConfirmCommit,
		Choices:  models.ConfirmChoices(),
		Required: true,
	}
}
