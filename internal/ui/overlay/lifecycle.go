package overlay

// State is the visibility state of an overlay.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Lifecycle runs an enter action when an overlay opens and exactly the exit
// action that enter returned when it closes. Repeated Set calls with the
// same value are no-ops, so any toggle sequence leaves only the effects of
// the final state.
type Lifecycle struct {
	state State
	enter func() (exit func())
	exit  func()
}

// NewLifecycle returns a closed lifecycle around enter.
func NewLifecycle(enter func() (exit func())) *Lifecycle {
	return &Lifecycle{enter: enter}
}

// State returns the current state.
func (l *Lifecycle) State() State { return l.state }

// IsOpen reports whether the lifecycle is open.
func (l *Lifecycle) IsOpen() bool { return l.state == StateOpen }

// Set moves to the requested state and reports whether anything changed.
func (l *Lifecycle) Set(open bool) bool {
	switch {
	case open && l.state == StateClosed:
		l.state = StateOpen
		exit := l.enter()
		if l.state != StateOpen {
			// Closed from inside enter; undo right away.
			if exit != nil {
				exit()
			}
			return true
		}
		l.exit = exit
		return true
	case !open && l.state == StateOpen:
		// State flips first so an exit action that re-enters Set is a no-op.
		l.state = StateClosed
		exit := l.exit
		l.exit = nil
		if exit != nil {
			exit()
		}
		return true
	default:
		return false
	}
}
