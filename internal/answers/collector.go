// Package answers accumulates prompt answers into a single record.
package answers

import (
	"strings"

	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/models"
)

// Collector owns the answer record of a session. It has a single writer.
type Collector struct {
	answers models.Answers
}

func NewCollector() *Collector {
	return &Collector{answers: models.Answers{Sections: map[string]string{}}}
}

// Record stores value under key. Dotted body.<section> keys go into the
// nested Sections map.
func (c *Collector) Record(key, value string) error {
	if section, ok := strings.CutPrefix(key, models.BodySectionPrefix); ok {
		if section == "" {
			return errors.ErrUnexpectedAnswer.WithContext("key", key)
		}
		c.answers.Sections[section] = value
		return nil
	}

	switch key {
	case models.KeyType:
		c.answers.Type = value
	case models.KeyScope:
		c.answers.Scope = value
	case models.KeySubject:
		c.answers.Subject = value
	case models.KeyIssue:
		c.answers.Issue = value
	case models.KeyBody:
		c.answers.Body = value
	case models.KeyBreaking:
		c.answers.Breaking = value
	case models.KeyFooter:
		c.answers.Footer = value
	case models.KeyConfirmCommit:
		c.answers.ConfirmCommit = value
	default:
		return errors.ErrUnexpectedAnswer.WithContext("key", key)
	}
	return nil
}

// Snapshot returns a copy of the current record.
func (c *Collector) Snapshot() models.Answers {
	return c.answers.Clone()
}
