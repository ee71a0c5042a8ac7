package core

// Outcome is the terminal result of one boot or trap vector pass. The two
// halt outcomes model the "no recovery possible" loops as explicit states
// rather than as literal infinite loops.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OutcomeResume        = Outcome(0) // resume
	OutcomeStackFault    = Outcome(1) // stack fault
	OutcomeRuntimeReturn = Outcome(2) // runtime return
)
