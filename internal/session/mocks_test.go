package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thomas-vilte/czcustom/internal/models"
)

type (
	MockPrompter struct {
		mock.Mock
	}

	MockEditor struct {
		mock.Mock
	}

	MockCommitter struct {
		mock.Mock
	}
)

func (m *MockPrompter) Ask(ctx context.Context, spec models.PromptSpec) (string, error) {
	args := m.Called(ctx, spec)
	if fn, ok := args.Get(0).(func(context.Context, models.PromptSpec) string); ok {
		return fn(ctx, spec), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

func (m *MockEditor) Edit(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

func (m *MockCommitter) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
