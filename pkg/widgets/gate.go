package widgets

import "fmt"

// RenderPhase is what a DateTimePicker renders for its current state.
type RenderPhase int

const (
	// PhaseSuppressed renders nothing because the height is not known yet.
	PhaseSuppressed RenderPhase = iota
	// PhasePlaceholder renders the native view with PlaceholderDate while
	// the native side finishes initializing.
	PhasePlaceholder
	// PhaseLive renders the native view with the real value.
	PhaseLive
)

func (p RenderPhase) String() string {
	switch p {
	case PhaseSuppressed:
		return "suppressed"
	case PhasePlaceholder:
		return "placeholder"
	case PhaseLive:
		return "live"
	default:
		return fmt.Sprintf("RenderPhase(%d)", int(p))
	}
}

func renderPhase(heightResolved, ready bool) RenderPhase {
	switch {
	case !heightResolved:
		return PhaseSuppressed
	case !ready:
		return PhasePlaceholder
	default:
		return PhaseLive
	}
}
