package ports

import "context"

// Editor opens the file at path for editing and blocks until it is closed.
// The exit status is returned as is; err is reserved for failing to run.
type Editor interface {
	Edit(ctx context.Context, path string) (exitStatus int, err error)
}
