package ports

import (
	"context"

	"github.com/thomas-vilte/czcustom/internal/models"
)

// Prompter asks one question and returns the raw answer. For choice and
// confirm prompts the answer is the Value of the picked choice.
type Prompter interface {
	Ask(ctx context.Context, spec models.PromptSpec) (string, error)
}
