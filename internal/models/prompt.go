package models

// PromptKind tells the UI driver how to ask a question.
type PromptKind string

const (
	PromptChoice  PromptKind = "choice"
	PromptText    PromptKind = "text"
	PromptConfirm PromptKind = "confirm"
)

// Answer keys. Body sections use BodySectionKey.
const (
	KeyType          = "type"
	KeyScope         = "scope"
	KeySubject       = "subject"
	KeyIssue         = "issue"
	KeyBody          = "body"
	KeyBreaking      = "breaking"
	KeyFooter        = "footer"
	KeyConfirmCommit = "confirmCommit"
)

// BodySectionPrefix is the dotted prefix of per-section body answers, e.g. body.symptom.
const BodySectionPrefix = KeyBody + "."

// BodySectionKey returns the answer key of a body section.
func BodySectionKey(section string) string {
	return BodySectionPrefix + section
}

// Choice is a selectable option of a choice or confirm prompt.
type Choice struct {
	Key   string // shortcut for confirm prompts, e.g. "y"
	Name  string // label, may span several lines
	Value string
}

// SectionFormat is the declarative wrapping rule of a body section answer.
type SectionFormat struct {
	Prefix  string
	Postfix string
}

// PromptSpec describes a single question. It is produced by the sequencer and
// consumed once by the UI driver.
type PromptSpec struct {
	Kind     PromptKind
	Key      string
	Message  string
	Choices  []Choice
	Format   *SectionFormat
	Required bool
}

// Decision is the answer to the confirmation prompt.
type Decision string

const (
	DecisionYes  Decision = "yes"
	DecisionNo   Decision = "no"
	DecisionEdit Decision = "edit"
)

// ConfirmChoices are the options of the confirmation prompt.
func ConfirmChoices() []Choice {
	return []Choice{
		{Key: "y", Name: "Yes", Value: string(DecisionYes)},
		{Key: "n", Name: "Abort commit", Value: string(DecisionNo)},
		{Key: "e", Name: "Edit message", Value: string(DecisionEdit)},
	}
}
