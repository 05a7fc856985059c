package viewmodel

import "fmt"

// String returns a string representation of the app state.
func (s AppState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateIncomplete:
		return "Incomplete"
	case StateInputError:
		return "InputError"
	case StateOutOfRange:
		return "OutOfRange"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
