package config

// TypeOption is a selectable commit type. Name is the display label and may
// span several lines.
type TypeOption struct {
	Value string `toml:"value" yaml:"value"`
	Name  string `toml:"name" yaml:"name"`
}

// Scope is a selectable commit scope.
type Scope struct {
	Name string `toml:"name" yaml:"name"`
}

// Section is one structured part of a commit body template.
type Section struct {
	Key     string `toml:"-" yaml:"-"`
	Prefix  string `toml:"prefix" yaml:"prefix"`
	Message string `toml:"message" yaml:"message"`
	Postfix string `toml:"postfix" yaml:"postfix"`
}

// IssueTemplate describes the optional issue-tracker question of a type. Link
// carries a run of '#' characters replaced by the issue identifier.
type IssueTemplate struct {
	Name    string `toml:"name" yaml:"name"`
	Message string `toml:"message" yaml:"message"`
	Link    string `toml:"link" yaml:"link"`
}

// Messages holds the prompt texts keyed by prompt.
type Messages struct {
	Type          string `toml:"type" yaml:"type"`
	Scope         string `toml:"scope" yaml:"scope"`
	CustomScope   string `toml:"customScope" yaml:"customScope"`
	Subject       string `toml:"subject" yaml:"subject"`
	Body          string `toml:"body" yaml:"body"`
	Breaking      string `toml:"breaking" yaml:"breaking"`
	Footer        string `toml:"footer" yaml:"footer"`
	ConfirmCommit string `toml:"confirmCommit" yaml:"confirmCommit"`
}

// Raw is a decoded commit configuration before defaults are applied. A nil
// Messages or Body means the section was absent from the file.
type Raw struct {
	Types                []TypeOption
	Scopes               []Scope
	AllowCustomScopes    bool
	AllowBreakingChanges []string
	Messages             *Messages
	Body                 map[string][]Section
	Issue                map[string]IssueTemplate
}

// Model is the fully populated commit configuration. It is built once by
// ApplyDefaults and shared read-only for the whole session.
type Model struct {
	Types             []TypeOption
	Scopes            []Scope
	AllowCustomScopes bool
	Messages          Messages

	types    map[string]struct{}
	breaking map[string]struct{}
	body     map[string][]Section
	issue    map[string]IssueTemplate
}

// HasType reports whether value is one of the configured commit types.
func (m *Model) HasType(value string) bool {
	_, ok := m.types[value]
	return ok
}

// Sections returns the body template of a type in declaration order. The
// second result is false when the type has no template.
func (m *Model) Sections(typeValue string) ([]Section, bool) {
	sections, ok := m.body[typeValue]
	if !ok {
		return nil, false
	}
	out := make([]Section, len(sections))
	copy(out, sections)
	return out, true
}

// Issue returns the issue-tracker template of a type.
func (m *Model) Issue(typeValue string) (IssueTemplate, bool) {
	tmpl, ok := m.issue[typeValue]
	return tmpl, ok
}

// AllowsBreaking reports whether the breaking-change question applies to a type.
func (m *Model) AllowsBreaking(typeValue string) bool {
	_, ok := m.breaking[typeValue]
	return ok
}
