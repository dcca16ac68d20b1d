package state

// TransitionKind is the navigation instruction carried by a Transition.
type TransitionKind int

const (
	// TransitionPush caches the current state and remembers it on the stack.
	TransitionPush TransitionKind = iota
	// TransitionPop resumes the state on top of the stack.
	TransitionPop
	// TransitionTo caches the current state without touching the stack.
	TransitionTo
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionPush:
		return "push"
	case TransitionPop:
		return "pop"
	default:
		return "to"
	}
}

// Transition tells the machine how to change the active state.
// A nil *Transition means stay.
type Transition struct {
	Kind  TransitionKind
	State AppState
}

// Push enters s, keeping the current state resumable through Pop.
func Push(s AppState) *Transition {
	return &Transition{Kind: TransitionPush, State: s}
}

// Pop returns to the most recently pushed state.
func Pop() *Transition {
	return &Transition{Kind: TransitionPop}
}

// To replaces the current state with s.
func To(s AppState) *Transition {
	return &Transition{Kind: TransitionTo, State: s}
}
