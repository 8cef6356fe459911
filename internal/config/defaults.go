package config

import (
	"strings"

	"github.com/thomas-vilte/czcustom/internal/errors"
)

const (
	defaultIssueName    = "Issue"
	defaultIssueMessage = "Issue identifier (optional):"
)

// DefaultMessages returns the built-in prompt texts.
func DefaultMessages() Messages {
	return Messages{
		Type:          "Select the type of change that you're committing:",
		Scope:         "Denote the SCOPE of this change (optional):",
		CustomScope:   "Denote the SCOPE of this change:",
		Subject:       "Write a SHORT, IMPERATIVE tense description of the change:",
		Body:          `Provide a LONGER description of the change (optional). Use "|" to break new line:`,
		Breaking:      "List any BREAKING CHANGES (optional):",
		Footer:        "List any ISSUES CLOSED by this change (optional). E.g.: #31, #34:",
		ConfirmCommit: "Are you sure you want to proceed with the commit above?",
	}
}

// ApplyDefaults validates a decoded configuration and returns the populated
// Model. It does not modify raw.
func ApplyDefaults(raw Raw) (*Model, error) {
	if raw.Messages == nil {
		return nil, errors.ErrConfigMissingKey.WithContext("key", "messages")
	}
	if raw.Body == nil {
		return nil, errors.ErrConfigMissingKey.WithContext("key", "body")
	}
	if len(raw.Types) == 0 {
		return nil, errors.ErrNoTypes
	}

	m := &Model{
		Types:             make([]TypeOption, 0, len(raw.Types)),
		Scopes:            make([]Scope, 0, len(raw.Scopes)),
		AllowCustomScopes: raw.AllowCustomScopes,
		Messages:          mergeMessages(*raw.Messages, DefaultMessages()),
		types:             make(map[string]struct{}, len(raw.Types)),
		breaking:          make(map[string]struct{}, len(raw.AllowBreakingChanges)),
		body:              make(map[string][]Section, len(raw.Body)),
		issue:             make(map[string]IssueTemplate, len(raw.Issue)),
	}

	for _, t := range raw.Types {
		value := strings.TrimSpace(t.Value)
		if value == "" {
			return nil, errors.ErrInvalidType.WithContext("name", t.Name)
		}
		if _, dup := m.types[value]; dup {
			return nil, errors.ErrInvalidType.WithContext("value", value)
		}
		name := t.Name
		if strings.TrimSpace(name) == "" {
			name = value
		}
		m.types[value] = struct{}{}
		m.Types = append(m.Types, TypeOption{Value: value, Name: name})
	}

	for _, s := range raw.Scopes {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		m.Scopes = append(m.Scopes, s)
	}

	for _, t := range raw.AllowBreakingChanges {
		m.breaking[t] = struct{}{}
	}

	for typeValue, sections := range raw.Body {
		template := make([]Section, 0, len(sections))
		for _, s := range sections {
			if s.Message == "" {
				s.Message = s.Key + ":"
			}
			template = append(template, s)
		}
		m.body[typeValue] = template
	}

	for typeValue, tmpl := range raw.Issue {
		if tmpl.Name == "" {
			tmpl.Name = defaultIssueName
		}
		if tmpl.Message == "" {
			tmpl.Message = defaultIssueMessage
		}
		m.issue[typeValue] = tmpl
	}

	return m, nil
}

func mergeMessages(given, defaults Messages) Messages {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Messages{
		Type:          pick(given.Type, defaults.Type),
		Scope:         pick(given.Scope, defaults.Scope),
		CustomScope:   pick(given.CustomScope, defaults.CustomScope),
		Subject:       pick(given.Subject, defaults.Subject),
		Body:          pick(given.Body, defaults.Body),
		Breaking:      pick(given.Breaking, defaults.Breaking),
		Footer:        pick(given.Footer, defaults.Footer),
		ConfirmCommit: pick(given.ConfirmCommit, defaults.ConfirmCommit),
	}
}
