package ucoro

// State describes where a coroutine is in its lifecycle.
//
// At most one coroutine is Running per chain of resumes; a coroutine that
// resumed another is Normal until the child yields or completes. Dead is
// terminal.
type State uint8

const (
	Dead State = iota
	Normal
	Running
	Suspended
)

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case Normal:
		return "normal"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	}
	return "unknown state"
}
