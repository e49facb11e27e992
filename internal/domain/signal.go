package domain

// Signal is a transient change notification fanned out to the connections
// subscribed to a project group. It carries the triggering ledger entry plus
// a short human-readable message, but it is only a cue to re-fetch state,
// not an authoritative delta. Signals are not persisted and are not
// replayed to late joiners.
type Signal struct {
	ID        string       `json:"id"`
	ProjectID string       `json:"projectId"`
	Type      ActivityType `json:"type"`
	Message   string       `json:"message"`
	IsRead    bool         `json:"isRead"`
	Time      string       `json:"time"`
	Activity  *ActivityLog `json:"activity,omitempty"`
}

// NewSignal builds a Signal from an appended ledger entry and a short human
// message for the notification toast.
func NewSignal(entry *ActivityLog, message string) Signal {
	sig := Signal{
		ID:      entry.ID.String(),
		Type:    entry.Type,
		Message: message,
		Time:    "Just now",
	}
	if entry.ProjectID != nil {
		sig.ProjectID = *entry.ProjectID
	}
	sig.Activity = entry
	return sig
}
