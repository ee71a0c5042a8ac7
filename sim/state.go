package sim

// State is the machine execution state. The two halt states are terminal:
// once entered, the program counter never advances again.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	StateRunning    = State(0) // running
	StateBootHalt   = State(1) // boot halt
	StateStackFault = State(2) // stack fault
)
