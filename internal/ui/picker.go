package ui

import (
	"context"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// pickerModel is a single-choice list driven by the arrow keys.
type pickerModel struct {
	title     string
	choices   []models.Choice
	cursor    int
	chosen    bool
	cancelled bool
}

func newPickerModel(spec models.PromptSpec) pickerModel {
	return pickerModel{title: spec.Message, choices: spec.Choices}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}
	case "down", "j", "tab":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if n := int(key[0] - '1'); n < len(m.choices) {
				m.cursor = n
			}
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen {
		return titleStyle.Render("? "+m.title) + " " + selectedStyle.Render(firstLine(m.choices[m.cursor].Name)) + "\n"
	}
	if m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("? "+m.title) + "\n")
	for i, c := range m.choices {
		lines := strings.Split(c.Name, "\n")
		pointer, style := "  ", optionStyle
		if i == m.cursor {
			pointer, style = cursorStyle.Render("❯ "), selectedStyle
		}
		b.WriteString(pointer + style.Render(lines[0]) + "\n")
		for _, l := range lines[1:] {
			b.WriteString("  " + style.Render(l) + "\n")
		}
	}
	b.WriteString(helpStyle.Render("↑/↓ move • enter select • esc cancel") + "\n")
	return b.String()
}

func (m pickerModel) value() string {
	return m.choices[m.cursor].Value
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// TeaPrompter shows choice prompts as an interactive list and delegates text
// and confirmation prompts to a LinePrompter.
type TeaPrompter struct {
	lines *LinePrompter
	in    io.Reader
	out   io.Writer
}

func NewTeaPrompter(lines *LinePrompter, in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{lines: lines, in: in, out: out}
}

func (p *TeaPrompter) Ask(ctx context.Context, spec models.PromptSpec) (string, error) {
	if spec.Kind != models.PromptChoice || len(spec.Choices) == 0 {
		return p.lines.Ask(ctx, spec)
	}

	program := tea.NewProgram(
		newPickerModel(spec),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := program.Run()
	if err != nil {
		return "", errors.ErrInterrupted.WithError(err)
	}

	m := final.(pickerModel)
	if m.cancelled || !m.chosen {
		return "", errors.ErrInterrupted
	}
	return m.value(), nil
}
