package trailerd

// Bootstrap states. The sequence is strictly linear; Failed is terminal and
// fatal for the process.
type State int32

const (
	Idle State = iota
	Listening
	Discovering
	Discovered
	Registering
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Discovering:
		return "discovering"
	case Discovered:
		return "discovered"
	case Registering:
		return "registering"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}
