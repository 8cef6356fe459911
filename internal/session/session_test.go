package session

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/confirm"
	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/models"
)

func init() {
	color.NoColor = true
}

type harness struct {
	prompter  *MockPrompter
	editor    *MockEditor
	committer *MockCommitter
	out       *bytes.Buffer
	session   *Session
	asked     []string
}

func newHarness(t *testing.T, cfg *config.Model) *harness {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	h := &harness{
		prompter:  new(MockPrompter),
		editor:    new(MockEditor),
		committer: new(MockCommitter),
		out:       &bytes.Buffer{},
	}
	ctrl := confirm.NewController(h.editor, h.committer, h.out, trans, confirm.WithTempDir(t.TempDir()))
	h.session = New(cfg, h.prompter, ctrl, h.out, trans)
	return h
}

// answer scripts the prompter: every prompt key gets its answer from the
// map, missing keys answer "".
func (h *harness) answer(values map[string]string) {
	h.prompter.On("Ask", mock.Anything, mock.Anything).Return(
		func(_ context.Context, spec models.PromptSpec) string {
			h.asked = append(h.asked, spec.Key)
			return values[spec.Key]
		},
		nil,
	)
}

func newConfig(t *testing.T) *config.Model {
	t.Helper()
	cfg, err := config.ApplyDefaults(config.Raw{
		Types: []config.TypeOption{
			{Value: "fix", Name: "fix: A bug fix"},
			{Value: "docs", Name: "docs: Documentation only changes"},
		},
		AllowCustomScopes: true,
		Messages:          &config.Messages{},
		Body: map[string][]config.Section{
			"fix": {
				{Key: "symptom", Prefix: "Problem Description: "},
				{Key: "solution", Prefix: "Solution Description: "},
			},
		},
	})
	require.NoError(t, err)
	return cfg
}

const scenarioAMessage = "fix(parser): null deref on empty input\n\n" +
	"Problem Description:\n\tcrash on empty input\n" +
	"Solution Description:\n\tadded null check"

func TestSession_ScenarioA_StructuredBodyCommitted(t *testing.T) {
	h := newHarness(t, newConfig(t))
	h.answer(map[string]string{
		models.KeyType:          "fix",
		models.KeyScope:         "parser",
		models.KeySubject:       "null deref on empty input",
		"body.symptom":          "crash on empty input",
		"body.solution":         "added null check",
		models.KeyConfirmCommit: string(models.DecisionYes),
	})
	h.committer.On("CreateCommit", mock.Anything, scenarioAMessage).Return(nil).Once()

	outcome, err := h.session.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, outcome.Committed)
	assert.Equal(t, scenarioAMessage, outcome.Message)
	assert.Equal(t, []string{
		models.KeyType, models.KeyScope, models.KeySubject,
		"body.symptom", "body.solution",
		models.KeyFooter, models.KeyConfirmCommit,
	}, h.asked)
	assert.Equal(t, []models.SessionState{
		models.StateCollectingBase,
		models.StateTypeChosen,
		models.StateExpanding,
		models.StateFooter,
		models.StateConfirming,
		models.StateCommitting,
	}, h.session.History())
	assert.Contains(t, h.out.String(), confirm.Separator+"\n"+scenarioAMessage+"\n"+confirm.Separator)
	h.committer.AssertExpectations(t)
}

func TestSession_ScenarioB_EmptySymptomOmitted(t *testing.T) {
	h := newHarness(t, newConfig(t))
	h.answer(map[string]string{
		models.KeyType:          "fix",
		models.KeyScope:         "parser",
		models.KeySubject:       "null deref on empty input",
		"body.symptom":          "",
		"body.solution":         "added null check",
		models.KeyConfirmCommit: string(models.DecisionYes),
	})
	want := "fix(parser): null deref on empty input\n\nSolution Description:\n\tadded null check"
	h.committer.On("CreateCommit", mock.Anything, want).Return(nil).Once()

	outcome, err := h.session.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, outcome.Message)
	assert.NotContains(t, outcome.Message, "Problem Description")
}

func TestSession_EditorFailureDiscards(t *testing.T) {
	h := newHarness(t, newConfig(t))
	h.answer(map[string]string{
		models.KeyType:          "fix",
		models.KeyScope:         "parser",
		models.KeySubject:       "null deref on empty input",
		"body.symptom":          "crash on empty input",
		"body.solution":         "added null check",
		models.KeyConfirmCommit: string(models.DecisionEdit),
	})
	h.editor.On("Edit", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		_ = os.WriteFile(args.String(1), []byte("garbage"), 0o600)
	}).Return(2, nil).Once()

	outcome, err := h.session.Run(context.Background())

	require.NoError(t, err)
	assert.False(t, outcome.Committed)
	assert.Equal(t, models.AbortEditDiscarded, outcome.Reason)
	assert.Equal(t, scenarioAMessage, outcome.Message)
	assert.Equal(t, models.StateAborted, h.session.State())
	history := h.session.History()
	assert.Equal(t, []models.SessionState{models.StateEditing, models.StateAborted}, history[len(history)-2:])
	h.committer.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
}

func TestSession_EditCommitsEditedMessage(t *testing.T) {
	h := newHarness(t, newConfig(t))
	h.answer(map[string]string{
		models.KeyType:          "docs",
		models.KeySubject:       "update readme",
		models.KeyConfirmCommit: string(models.DecisionEdit),
	})
	h.editor.On("Edit", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		_ = os.WriteFile(args.String(1), []byte("docs: rewrite readme\n"), 0o600)
	}).Return(0, nil).Once()
	h.committer.On("CreateCommit", mock.Anything, "docs: rewrite readme").Return(nil).Once()

	outcome, err := h.session.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, outcome.Committed)
	assert.True(t, outcome.Edited)
	assert.Equal(t, models.StateCommitting, h.session.State())
	h.committer.AssertExpectations(t)
}

func TestSession_ScenarioC_GenericBody(t *testing.T) {
	h := newHarness(t, newConfig(t))
	h.answer(map[string]string{
		models.KeyType:          "docs",
		models.KeyScope:         "readme",
		models.KeySubject:       "fix typo",
		models.KeyBody:          "first line|second line",
		models.KeyFooter:        "Closes #12",
		models.KeyConfirmCommit: string(models.DecisionNo),
	})

	outcome, err := h.session.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		models.KeyType, models.KeyScope, models.KeySubject,
		models.KeyBody, models.KeyFooter, models.KeyConfirmCommit,
	}, h.asked)
	assert.Equal(t, models.AbortCancelled, outcome.Reason)
	assert.Equal(t, "docs(readme): fix typo\n\nfirst line\nsecond line\n\nCloses #12", outcome.Message)
	assert.Contains(t, h.out.String(), "Commit has been canceled.")
	h.committer.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
}

func TestSession_PrompterErrorAborts(t *testing.T) {
	h := newHarness(t, newConfig(t))
	h.prompter.On("Ask", mock.Anything, mock.Anything).Return("", errors.ErrInterrupted).Once()

	_, err := h.session.Run(context.Background())

	assert.ErrorIs(t, err, errors.ErrInterrupted)
	assert.Equal(t, models.StateAborted, h.session.State())
	h.committer.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
}

func TestSession_CommitErrorPropagates(t *testing.T) {
	h := newHarness(t, newConfig(t))
	h.answer(map[string]string{
		models.KeyType:          "docs",
		models.KeySubject:       "update readme",
		models.KeyConfirmCommit: string(models.DecisionYes),
	})
	h.committer.On("CreateCommit", mock.Anything, "docs: update readme").Return(errors.ErrNoChanges)

	_, err := h.session.Run(context.Background())

	assert.ErrorIs(t, err, errors.ErrNoChanges)
	assert.Equal(t, models.StateAborted, h.session.State())
}
