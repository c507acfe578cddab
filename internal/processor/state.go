package processor

// State tracks where a job is in the pipeline. Cleanup is reached from every
// state past Init, whether the stage before it succeeded or failed.
type State int

const (
	StateInit State = iota
	StateExtracting
	StateIsolating
	StateMerging
	StateCleanup
	StateDone
	StateAborted
)

var stateNames = map[State]string{
	StateInit:       "init",
	StateExtracting: "extracting",
	StateIsolating:  "isolating",
	StateMerging:    "merging",
	StateCleanup:    "cleanup",
	StateDone:       "done",
	StateAborted:    "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) terminal() bool {
	return s == StateDone || s == StateAborted
}
