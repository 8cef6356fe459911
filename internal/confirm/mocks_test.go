package confirm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type (
	MockEditor struct {
		mock.Mock
	}

	MockCommitter struct {
		mock.Mock
	}
)

func (m *MockEditor) Edit(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

func (m *MockCommitter) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
