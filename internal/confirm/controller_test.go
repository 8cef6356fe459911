package confirm

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/models"
)

const message = "fix(parser): null deref on empty input\n\nProblem Description:\n\tcrash on empty input"

func init() {
	color.NoColor = true
}

type fixture struct {
	editor    *MockEditor
	committer *MockCommitter
	out       *bytes.Buffer
	tempDir   string
	ctrl      *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	f := &fixture{
		editor:    new(MockEditor),
		committer: new(MockCommitter),
		out:       &bytes.Buffer{},
		tempDir:   t.TempDir(),
	}
	f.ctrl = NewController(f.editor, f.committer, f.out, trans, WithTempDir(f.tempDir))
	return f
}

// overwrite makes the mocked editor replace the file contents.
func overwrite(content string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = os.WriteFile(args.String(1), []byte(content), 0o600)
	}
}

func assertNoLeftovers(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "message file must be removed")
}

func TestController_Preview(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Preview(message)

	assert.Equal(t, "\n"+Separator+"\n"+message+"\n"+Separator+"\n\n", f.out.String())
}

func TestController_ResolveYes(t *testing.T) {
	f := newFixture(t)
	f.committer.On("CreateCommit", mock.Anything, message).Return(nil).Once()

	outcome, err := f.ctrl.Resolve(context.Background(), models.DecisionYes, message)

	require.NoError(t, err)
	assert.Equal(t, models.Outcome{Committed: true, Message: message}, outcome)
	f.committer.AssertExpectations(t)
	f.editor.AssertNotCalled(t, "Edit", mock.Anything, mock.Anything)
}

func TestController_ResolveYes_CommitError(t *testing.T) {
	f := newFixture(t)
	f.committer.On("CreateCommit", mock.Anything, message).Return(errors.ErrNoChanges)

	_, err := f.ctrl.Resolve(context.Background(), models.DecisionYes, message)

	assert.ErrorIs(t, err, errors.ErrNoChanges)
}

func TestController_ResolveNo(t *testing.T) {
	f := newFixture(t)

	outcome, err := f.ctrl.Resolve(context.Background(), models.DecisionNo, message)

	require.NoError(t, err)
	assert.False(t, outcome.Committed)
	assert.Equal(t, models.AbortCancelled, outcome.Reason)
	assert.Contains(t, f.out.String(), "Commit has been canceled.")
	f.committer.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
}

func TestController_ResolveEdit(t *testing.T) {
	t.Run("exit zero commits the edited text", func(t *testing.T) {
		f := newFixture(t)
		var seen string
		f.editor.On("Edit", mock.Anything, mock.MatchedBy(func(path string) bool {
			return filepath.Dir(path) == f.tempDir
		})).Run(func(args mock.Arguments) {
			data, _ := os.ReadFile(args.String(1))
			seen = string(data)
			overwrite("feat: rewritten\n\n")(args)
		}).Return(0, nil).Once()
		f.committer.On("CreateCommit", mock.Anything, "feat: rewritten").Return(nil).Once()

		outcome, err := f.ctrl.Resolve(context.Background(), models.DecisionEdit, message)

		require.NoError(t, err)
		assert.Equal(t, message, seen, "editor receives the composed message")
		assert.Equal(t, models.Outcome{Committed: true, Message: "feat: rewritten", Edited: true}, outcome)
		assert.NotContains(t, f.out.String(), "not in type(scope): subject form")
		f.editor.AssertExpectations(t)
		f.committer.AssertExpectations(t)
		assertNoLeftovers(t, f.tempDir)
	})

	t.Run("non conventional header warns but still commits", func(t *testing.T) {
		f := newFixture(t)
		f.editor.On("Edit", mock.Anything, mock.Anything).Run(overwrite("Rewrote the parser\n\ndetails")).Return(0, nil).Once()
		f.committer.On("CreateCommit", mock.Anything, "Rewrote the parser\n\ndetails").Return(nil).Once()

		outcome, err := f.ctrl.Resolve(context.Background(), models.DecisionEdit, message)

		require.NoError(t, err)
		assert.True(t, outcome.Committed)
		assert.Contains(t, f.out.String(), "The edited first line is not in type(scope): subject form")
		f.committer.AssertExpectations(t)
	})

	t.Run("non-zero exit never commits", func(t *testing.T) {
		f := newFixture(t)
		f.editor.On("Edit", mock.Anything, mock.Anything).Run(overwrite("half edited")).Return(1, nil).Once()

		outcome, err := f.ctrl.Resolve(context.Background(), models.DecisionEdit, message)

		require.NoError(t, err)
		assert.False(t, outcome.Committed)
		assert.Equal(t, models.AbortEditDiscarded, outcome.Reason)
		assert.Equal(t, message, outcome.Message)
		assert.Contains(t, f.out.String(), "Editor exited with status 1")
		assert.Contains(t, f.out.String(), message, "notice shows the original message")
		f.committer.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
		assertNoLeftovers(t, f.tempDir)
	})

	t.Run("editor failing to start never commits", func(t *testing.T) {
		f := newFixture(t)
		f.editor.On("Edit", mock.Anything, mock.Anything).Return(-1, errors.ErrEditorFailed.WithError(fmt.Errorf("not found")))

		outcome, err := f.ctrl.Resolve(context.Background(), models.DecisionEdit, message)

		require.NoError(t, err)
		assert.Equal(t, models.AbortEditDiscarded, outcome.Reason)
		f.committer.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
	})

	t.Run("empty result is discarded", func(t *testing.T) {
		f := newFixture(t)
		f.editor.On("Edit", mock.Anything, mock.Anything).Run(overwrite("  \n\n")).Return(0, nil)

		outcome, err := f.ctrl.Resolve(context.Background(), models.DecisionEdit, message)

		require.NoError(t, err)
		assert.Equal(t, models.AbortEditDiscarded, outcome.Reason)
		f.committer.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
	})

	t.Run("temp file failure never reaches the editor", func(t *testing.T) {
		f := newFixture(t)
		trans, err := i18n.NewTranslations("en", "")
		require.NoError(t, err)
		ctrl := NewController(f.editor, f.committer, f.out, trans, WithTempDir(filepath.Join(f.tempDir, "missing")))

		outcome, err := ctrl.Resolve(context.Background(), models.DecisionEdit, message)

		require.NoError(t, err)
		assert.Equal(t, models.AbortEditDiscarded, outcome.Reason)
		f.editor.AssertNotCalled(t, "Edit", mock.Anything, mock.Anything)
		f.committer.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
	})
}

func TestController_ResolveInvalidDecision(t *testing.T) {
	f := newFixture(t)

	_, err := f.ctrl.Resolve(context.Background(), models.Decision("maybe"), message)

	assert.ErrorIs(t, err, errors.ErrInvalidDecision)
}
