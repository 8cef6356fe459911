package models

// AbortReason explains why a session ended without committing.
type AbortReason string

const (
	AbortCancelled     AbortReason = "cancelled"
	AbortEditDiscarded AbortReason = "edit_discarded"
)

// Outcome is the final disposition of a confirmation cycle.
type Outcome struct {
	Committed bool
	Message   string
	Edited    bool
	Reason    AbortReason
}
