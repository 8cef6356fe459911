package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/thomas-vilte/czcustom/internal/models"
)

// LinePrompter asks every kind of prompt on a line-oriented stream. It is
// used when the input is not a terminal and for all text prompts.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
	t   *i18n.Translations
}

func NewLinePrompter(in io.Reader, out io.Writer, t *i18n.Translations) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, t: t}
}

// Ask blocks until a valid answer is read. Invalid or missing required answers
// are asked again.
func (p *LinePrompter) Ask(ctx context.Context, spec models.PromptSpec) (string, error) {
	for {
		switch spec.Kind {
		case models.PromptChoice:
			p.printChoices(spec)
		case models.PromptConfirm:
			_, _ = fmt.Fprintf(p.out, "%s %s (%s) ", Info.Sprint("?"), spec.Message, confirmKeys(spec.Choices))
		default:
			_, _ = fmt.Fprintf(p.out, "%s %s ", Info.Sprint("?"), spec.Message)
		}

		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		answer, ok := p.parse(spec, line)
		if ok {
			return answer, nil
		}
	}
}

func (p *LinePrompter) parse(spec models.PromptSpec, line string) (string, bool) {
	switch spec.Kind {
	case models.PromptChoice:
		if line == "" && !spec.Required {
			return "", true
		}
		if value, ok := matchChoice(spec.Choices, line); ok {
			return value, true
		}
		PrintWarning(p.out, p.t.GetMessage("prompt.invalid_choice", 0, map[string]interface{}{
			"Max": len(spec.Choices),
		}))
		return "", false

	case models.PromptConfirm:
		if value, ok := matchConfirm(spec.Choices, line); ok {
			return value, true
		}
		PrintWarning(p.out, p.t.GetMessage("prompt.invalid_confirm", 0, map[string]interface{}{
			"Keys": confirmKeys(spec.Choices),
		}))
		return "", false
	}

	if spec.Required && line == "" {
		PrintWarning(p.out, p.t.GetMessage("prompt.required", 0, nil))
		return "", false
	}
	return line, true
}

func (p *LinePrompter) printChoices(spec models.PromptSpec) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", Info.Sprint("?"), spec.Message)
	for i, c := range spec.Choices {
		lines := strings.Split(c.Name, "\n")
		_, _ = fmt.Fprintf(p.out, "  %s %s\n", Accent.Sprintf("%2d)", i+1), lines[0])
		for _, l := range lines[1:] {
			_, _ = fmt.Fprintf(p.out, "      %s\n", l)
		}
	}
	_, _ = fmt.Fprint(p.out, Dim.Sprint("  > "))
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted; EOF with nothing read is an interruption.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.ErrInterrupted.WithError(err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			_, _ = fmt.Fprintln(p.out)
			return strings.TrimSpace(line), nil
		}
		return "", errors.ErrInterrupted.WithError(err)
	}
	return strings.TrimSpace(line), nil
}

// matchChoice accepts the 1-based index or the exact value of a choice.
func matchChoice(choices []models.Choice, input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1].Value, true
		}
		return "", false
	}
	for _, c := range choices {
		if c.Value != "" && c.Value == input {
			return c.Value, true
		}
	}
	return "", false
}

func matchConfirm(choices []models.Choice, input string) (string, bool) {
	input = strings.ToLower(input)
	if input == "" {
		return "", false
	}
	for _, c := range choices {
		if input == c.Key || input == c.Value || input == strings.ToLower(c.Name) {
			return c.Value, true
		}
	}
	return "", false
}

func confirmKeys(choices []models.Choice) string {
	keys := make([]string, 0, len(choices))
	for _, c := range choices {
		keys = append(keys, c.Key)
	}
	return strings.Join(keys, "/")
}
