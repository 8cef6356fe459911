package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/models"
)

func newModel(t *testing.T, mutate func(*config.Raw)) *config.Model {
	t.Helper()
	raw := config.Raw{
		Types: []config.TypeOption{
			{Value: "feat", Name: "feat: A new feature"},
			{Value: "fix", Name: "fix: A bug fix"},
			{Value: "docs", Name: "docs: Documentation only changes"},
		},
		Scopes:   []config.Scope{{Name: "parser"}, {Name: "cli"}},
		Messages: &config.Messages{},
		Body: map[string][]config.Section{
			"fix": {
				{Key: "symptom", Prefix: "Problem Description: ", Message: "Describe the symptom"},
				{Key: "solution", Prefix: "Solution Description: ", Message: "Describe the solution"},
				{Key: "detail", Message: "Any detail"},
			},
		},
	}
	if mutate != nil {
		mutate(&raw)
	}
	cfg, err := config.ApplyDefaults(raw)
	require.NoError(t, err)
	return cfg
}

// drain answers every prompt with answer(key) and returns the keys in the
// order they were asked.
func drain(t *testing.T, s *Sequencer, answer func(models.PromptSpec) string) []string {
	t.Helper()
	var keys []string
	for {
		p, ok := s.Next()
		if !ok {
			break
		}
		keys = append(keys, p.Key)
		_, err := s.OnAnswer(p.Key, answer(p))
		require.NoError(t, err)
	}
	return keys
}

func answerType(value string) func(models.PromptSpec) string {
	return func(p models.PromptSpec) string {
		switch p.Key {
		case models.KeyType:
			return value
		case models.KeyConfirmCommit:
			return string(models.DecisionYes)
		}
		return ""
	}
}

func TestSequencer_InitialPrompts(t *testing.T) {
	cfg := newModel(t, nil)
	s := NewSequencer(cfg)

	typ, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, models.PromptChoice, typ.Kind)
	assert.Equal(t, models.KeyType, typ.Key)
	require.Len(t, typ.Choices, 3)
	assert.Equal(t, "feat", typ.Choices[0].Value)
	assert.Equal(t, "fix: A bug fix", typ.Choices[1].Name)

	scope, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, models.PromptChoice, scope.Kind)
	require.Len(t, scope.Choices, 3)
	assert.Equal(t, "parser", scope.Choices[0].Value)
	assert.Equal(t, emptyScope, scope.Choices[2].Name)
	assert.Equal(t, "", scope.Choices[2].Value)

	subject, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, models.KeySubject, subject.Key)
	assert.True(t, subject.Required)

	_, ok = s.Next()
	assert.False(t, ok, "nothing is queued before the type is answered")
	assert.False(t, s.Done())
}

func TestSequencer_ScopeVariants(t *testing.T) {
	t.Run("custom scopes use a text prompt", func(t *testing.T) {
		cfg := newModel(t, func(r *config.Raw) { r.AllowCustomScopes = true })
		s := NewSequencer(cfg)
		s.Next()
		scope, _ := s.Next()
		assert.Equal(t, models.PromptText, scope.Kind)
		assert.Equal(t, models.KeyScope, scope.Key)
		assert.Equal(t, config.DefaultMessages().CustomScope, scope.Message)
	})

	t.Run("no scopes and no custom scopes skips the prompt", func(t *testing.T) {
		cfg := newModel(t, func(r *config.Raw) { r.Scopes = nil })
		s := NewSequencer(cfg)
		s.Next()
		next, _ := s.Next()
		assert.Equal(t, models.KeySubject, next.Key)
	})
}

func TestSequencer_SectionsInDeclarationOrder(t *testing.T) {
	cfg := newModel(t, nil)
	keys := drain(t, NewSequencer(cfg), answerType("fix"))

	assert.Equal(t, []string{
		models.KeyType,
		models.KeyScope,
		models.KeySubject,
		"body.symptom",
		"body.solution",
		"body.detail",
		models.KeyFooter,
		models.KeyConfirmCommit,
	}, keys)
}

func TestSequencer_SectionPromptsCarryFormat(t *testing.T) {
	cfg := newModel(t, nil)
	s := NewSequencer(cfg)
	for i := 0; i < 3; i++ {
		p, _ := s.Next()
		_, err := s.OnAnswer(p.Key, map[string]string{models.KeyType: "fix"}[p.Key])
		require.NoError(t, err)
	}

	symptom, ok := s.Next()
	require.True(t, ok)
	require.NotNil(t, symptom.Format)
	assert.Equal(t, "Problem Description: ", symptom.Format.Prefix)
	assert.Equal(t, "Describe the symptom", symptom.Message)

	_, err := s.OnAnswer(symptom.Key, "crash")
	require.NoError(t, err)
	s.Next()
	detail, _ := s.Next()
	require.NotNil(t, detail.Format)
	assert.Equal(t, "", detail.Format.Prefix)
}

func TestSequencer_ScenarioC_GenericBody(t *testing.T) {
	cfg := newModel(t, nil)
	s := NewSequencer(cfg)

	var expanded []models.PromptSpec
	var keys []string
	for {
		p, ok := s.Next()
		if !ok {
			break
		}
		keys = append(keys, p.Key)
		value := answerType("feat")(p)
		out, err := s.OnAnswer(p.Key, value)
		require.NoError(t, err)
		if p.Key == models.KeyType {
			expanded = out
		}
	}

	assert.Equal(t, []string{
		models.KeyType,
		models.KeyScope,
		models.KeySubject,
		models.KeyBody,
		models.KeyFooter,
		models.KeyConfirmCommit,
	}, keys)
	require.Len(t, expanded, 3)
	assert.Nil(t, expanded[0].Format)
	assert.Equal(t, models.PromptConfirm, expanded[2].Kind)
	assert.Equal(t, models.ConfirmChoices(), expanded[2].Choices)
	assert.True(t, s.Done())
}

func TestSequencer_IssueAndBreaking(t *testing.T) {
	cfg := newModel(t, func(r *config.Raw) {
		r.AllowBreakingChanges = []string{"fix"}
		r.Issue = map[string]config.IssueTemplate{
			"fix": {Name: "Jira", Link: "https://jira/PROJ-###"},
		}
	})

	keys := drain(t, NewSequencer(cfg), answerType("fix"))
	assert.Equal(t, []string{
		models.KeyType,
		models.KeyScope,
		models.KeySubject,
		models.KeyIssue,
		"body.symptom",
		"body.solution",
		"body.detail",
		models.KeyBreaking,
		models.KeyFooter,
		models.KeyConfirmCommit,
	}, keys)
}

func TestSequencer_IssuePromptFallsBackToDefaultMessage(t *testing.T) {
	cfg := newModel(t, func(r *config.Raw) {
		r.Issue = map[string]config.IssueTemplate{"docs": {}}
	})
	s := NewSequencer(cfg)
	for i := 0; i < 3; i++ {
		p, _ := s.Next()
		_, err := s.OnAnswer(p.Key, answerType("docs")(p))
		require.NoError(t, err)
	}

	issue, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, models.KeyIssue, issue.Key)
	assert.Equal(t, "Issue identifier (optional):", issue.Message)
}

func TestSequencer_OnAnswerErrors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		s := NewSequencer(newModel(t, nil))
		s.Next()
		_, err := s.OnAnswer(models.KeyType, "chore")
		assert.ErrorIs(t, err, errors.ErrUnknownType)
	})

	t.Run("key never issued", func(t *testing.T) {
		s := NewSequencer(newModel(t, nil))
		_, err := s.OnAnswer(models.KeyFooter, "x")
		assert.ErrorIs(t, err, errors.ErrUnexpectedAnswer)
	})

	t.Run("key answered twice", func(t *testing.T) {
		s := NewSequencer(newModel(t, nil))
		s.Next()
		_, err := s.OnAnswer(models.KeyType, "feat")
		require.NoError(t, err)
		_, err = s.OnAnswer(models.KeyType, "fix")
		assert.ErrorIs(t, err, errors.ErrUnexpectedAnswer)
	})

	t.Run("answer after confirm", func(t *testing.T) {
		s := NewSequencer(newModel(t, nil))
		drain(t, s, answerType("docs"))
		require.True(t, s.Done())
		_, ok := s.Next()
		assert.False(t, ok)
		_, err := s.OnAnswer(models.KeyFooter, "late")
		assert.ErrorIs(t, err, errors.ErrUnexpectedAnswer)
	})
}
