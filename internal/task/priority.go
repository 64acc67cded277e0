package task

import "fmt"

// Priority is the urgency of a task. The zero value is [PriorityLow].
type Priority int

// Priority values.
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// Serialized priority tokens.
const (
	priorityHighName   = "High"
	priorityMediumName = "Medium"
	priorityLowName    = "Low"
)

// ParsePriority parses user-supplied priority text. Only the exact lowercase
// words "high", "medium" and "low" are accepted; ok is false otherwise and
// the returned priority is [PriorityLow].
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	default:
		return PriorityLow, false
	}
}

// String returns the serialized token ("High", "Medium" or "Low").
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return priorityHighName
	case PriorityMedium:
		return priorityMediumName
	case PriorityLow:
		return priorityLowName
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (p Priority) MarshalText() ([]byte, error) {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPriority, int(p))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the
// serialized tokens only, not the lowercase CLI words.
func (p *Priority) UnmarshalText(text []byte) error {
	switch string(text) {
	case priorityHighName:
		*p = PriorityHigh
	case priorityMediumName:
		*p = PriorityMedium
	case priorityLowName:
		*p = PriorityLow
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPriority, text)
	}

	return nil
}
