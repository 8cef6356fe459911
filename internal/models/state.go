package models

// SessionState is a step of the commit session.
type SessionState string

const (
	StateCollectingBase SessionState = "COLLECTING_BASE"
	StateTypeChosen     SessionState = "TYPE_CHOSEN"
	StateExpanding      SessionState = "EXPANDING"
	StateFooter         SessionState = "FOOTER"
	StateConfirming     SessionState = "CONFIRMING"
	StateEditing        SessionState = "EDITING"
	StateCommitting     SessionState = "COMMITTING"
	StateAborted        SessionState = "ABORTED"
)

// Terminal reports whether no further transition can happen.
func (s SessionState) Terminal() bool {
	return s == StateCommitting || s == StateAborted
}
