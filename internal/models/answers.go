package models

// Answers is the accumulated answer record of a session.
type Answers struct {
	Type          string
	Scope         string
	Subject       string
	Issue         string
	Body          string
	Breaking      string
	Footer        string
	ConfirmCommit string

	// Sections holds body.<section> answers, already wrapped with their format.
	Sections map[string]string
}

// Clone returns a deep copy of the record.
func (a Answers) Clone() Answers {
	out := a
	if a.Sections != nil {
		out.Sections = make(map[string]string, len(a.Sections))
		for k, v := range a.Sections {
			out.Sections[k] = v
		}
	}
	return out
}
