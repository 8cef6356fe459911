package ports

import "context"

// Committer records a finished commit message.
type Committer interface {
	CreateCommit(ctx context.Context, message string) error
}
