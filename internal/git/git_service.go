package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/logger"
)

// GitService runs git in dir, or in the working directory when dir is empty.
type GitService struct {
	dir string
}

func NewGitService(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	return cmd
}

// HasStagedChanges checks if there are changes in the staging area
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := s.command(ctx, "diff", "--cached", "--quiet")
	err := cmd.Run()

	// If the command returns an error (exit status 1), it means there are staged changes
	return err != nil && cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == 1
}

// CreateCommit commits the staged changes with message. The message is fed
// through stdin so multi-line bodies are kept verbatim.
func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	if !s.HasStagedChanges(ctx) {
		return errors.ErrNoChanges
	}

	cmd := s.command(ctx, "commit", "--cleanup=verbatim", "-F", "-")
	cmd.Stdin = strings.NewReader(message + "\n")
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.ErrCreateCommit.WithError(err).WithContext("stderr", strings.TrimSpace(stderr.String()))
	}

	branch, err := s.GetCurrentBranch(ctx)
	if err != nil {
		branch = "unknown"
	}
	logger.Info(ctx, "commit created", "branch", branch, "lines", strings.Count(message, "\n")+1)
	return nil
}

// GetCurrentBranch returns the checked out branch, or "" on a detached HEAD.
func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	output, err := s.command(ctx, "branch", "--show-current").Output()
	if err != nil {
		return "", errors.ErrNotRepository.WithError(err)
	}
	return strings.TrimSpace(string(output)), nil
}

// RepoRoot returns the top-level directory of the repository.
func (s *GitService) RepoRoot(ctx context.Context) (string, error) {
	output, err := s.command(ctx, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", errors.ErrNotRepository.WithError(err)
	}
	return strings.TrimSpace(string(output)), nil
}
