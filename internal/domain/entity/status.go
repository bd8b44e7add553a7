// Package entity defines the core business entities for the domain layer.
package entity

// Status identifies a payment's position in its lifecycle. The numeric
// values are persisted in the payment_statuses reference table.
type Status int64

// Payment lifecycle statuses.
const (
	StatusPending    Status = 1
	StatusProcessing Status = 2
	StatusCompleted  Status = 3
	StatusCancelled  Status = 4
	StatusRejected   Status = 5
)

var statusNames = map[Status]string{
	StatusPending:    "Pending",
	StatusProcessing: "Processing",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
	StatusRejected:   "Rejected",
}

// transitions lists the permitted lifecycle moves. Completed, Cancelled
// and Rejected are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled, StatusRejected},
	StatusProcessing: {StatusCompleted, StatusCancelled},
}

// String returns the human-readable status name.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the status is part of the lifecycle.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle permits moving to the
// target status. Re-requesting the current status is always permitted;
// callers treat it as a no-op.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
