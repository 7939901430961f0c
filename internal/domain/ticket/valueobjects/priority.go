package valueobjects

// Priority is the urgency level of a ticket.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// AllPriorities returns every valid priority, highest first.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}
