// Package composer renders an answer record into the final commit message.
package composer

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/models"
	"github.com/thomas-vilte/czcustom/internal/regex"
)

const (
	// HeaderLimit is the hard ceiling of the first line. Longer headers are cut.
	HeaderLimit = 100
	// LineWidth is the soft wrap width of every other line.
	LineWidth = 100

	// LineBreak typed inside single-line answers becomes a newline.
	LineBreak = "|"

	sectionSeparator = LineBreak + "\t"
	defaultPostfix   = "\n"
	breakingLabel    = "BREAKING CHANGE: "
)

// FormatSection wraps a body section answer with its prefix and postfix. A
// blank answer yields "" so the section is left out of the message.
func FormatSection(format models.SectionFormat, raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	var b strings.Builder
	if format.Prefix != "" {
		b.WriteString(format.Prefix)
		b.WriteString(sectionSeparator)
	}
	b.WriteString(value)
	if format.Postfix != "" {
		b.WriteString(format.Postfix)
	} else {
		b.WriteString(defaultPostfix)
	}
	return b.String()
}

// Header builds the first line of the message, cut to HeaderLimit characters.
// Escape sequences are dropped and control characters become spaces, so every
// rune of the result counts toward the limit.
func Header(typeValue, scope, subject string) string {
	var h string
	if scope = strings.TrimSpace(scope); scope != "" {
		h = typeValue + "(" + scope + "): " + subject
	} else {
		h = typeValue + ": " + subject
	}

	runes := []rune(printable(h))
	if len(runes) > HeaderLimit {
		runes = runes[:HeaderLimit]
	}
	return string(runes)
}

func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, ansi.Strip(s))
}

// Compose renders answers into a commit message. It is deterministic and has
// no side effects.
func Compose(answers models.Answers, cfg *config.Model) (string, error) {
	if !cfg.HasType(answers.Type) {
		return "", errors.ErrUnknownType.WithContext("type", answers.Type)
	}

	subject := strings.TrimSpace(answers.Subject)
	if subject == "" {
		return "", errors.ErrEmptySubject
	}

	segments := []string{Header(answers.Type, answers.Scope, subject)}

	if body := renderBody(answers, cfg); body != "" {
		segments = append(segments, body)
	}

	if tmpl, ok := cfg.Issue(answers.Type); ok {
		if ref := IssueReference(tmpl, answers.Issue); ref != "" {
			segments = append(segments, wrap(ref))
		}
	}

	if breaking := tidy(breakLines(answers.Breaking)); breaking != "" {
		segments = append(segments, wrap(breakingLabel+breaking))
	}

	if footer := strings.TrimSpace(answers.Footer); footer != "" {
		segments = append(segments, wrap(footer))
	}

	return strings.Join(segments, "\n\n"), nil
}

// IssueReference renders the labeled issue line, or "" when id is blank. The
// first run of '#' in the link is replaced by id as typed; a link without one
// gets id appended.
func IssueReference(tmpl config.IssueTemplate, id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}

	ref := id
	if tmpl.Link != "" {
		if loc := regex.IssuePlaceholder.FindStringIndex(tmpl.Link); loc != nil {
			ref = tmpl.Link[:loc[0]] + id + tmpl.Link[loc[1]:]
		} else {
			ref = tmpl.Link + id
		}
	}
	return tmpl.Name + ": " + ref
}

func renderBody(answers models.Answers, cfg *config.Model) string {
	var text string
	if sections, ok := cfg.Sections(answers.Type); ok {
		var b strings.Builder
		for _, s := range sections {
			v := answers.Sections[s.Key]
			if strings.TrimSpace(v) == "" {
				continue
			}
			b.WriteString(v)
		}
		text = b.String()
	} else {
		text = answers.Body
	}

	return wrap(tidy(breakLines(text)))
}

func breakLines(s string) string {
	return strings.ReplaceAll(s, LineBreak, "\n")
}

// tidy drops trailing whitespace on every line and blank lines around the text.
func tidy(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// wrap soft-wraps every line wider than LineWidth without cutting words.
func wrap(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > LineWidth {
			lines[i] = ansi.Wordwrap(line, LineWidth, "")
		}
	}
	return tidy(strings.Join(lines, "\n"))
}
