package viewmodel

// AppState represents the state of the calculation form.
type AppState int

const (
	// StateReady indicates a full result is on screen.
	StateReady AppState = iota
	// StateIncomplete indicates a field is still being typed.
	StateIncomplete
	// StateInputError indicates a field holds text that is not a number.
	StateInputError
	// StateOutOfRange indicates the part is outside the tabulated domain.
	StateOutOfRange
)

// AppView represents the entire form view model.
type AppView struct {
	Result      ResultView
	Info        string
	KeyBindings []KeyBinding
	State       AppState
	Width       int
	Height      int
	ShowHelp    bool
}

// KeyBinding represents a keyboard shortcut.
type KeyBinding struct {
	Key         string
	Description string
	IsActive    bool
}

// IsReady returns true if the form shows a computed result.
func (av AppView) IsReady() bool {
	return av.State == StateReady
}

// HasError returns true if the info line should be styled as an error.
// Partially typed numbers are not errors.
func (av AppView) HasError() bool {
	return av.State == StateInputError || av.State == StateOutOfRange
}

// GetActiveKeyBindings returns only the currently active key bindings.
func (av AppView) GetActiveKeyBindings() []KeyBinding {
	var active []KeyBinding
	for _, kb := range av.KeyBindings {
		if kb.IsActive {
			active = append(active, kb)
		}
	}
	return active
}
