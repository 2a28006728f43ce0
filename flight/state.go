package flight

// State is the session lifecycle state.
type State int

const (
	StateInitializing State = iota
	StateFlying
	StateLanded
	StateCrashed
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateFlying:
		return "flying"
	case StateLanded:
		return "landed"
	case StateCrashed:
		return "crashed"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}

// Terminal reports whether no further ticks are accepted.
func (s State) Terminal() bool {
	return s == StateLanded || s == StateCrashed || s == StateExpired
}
