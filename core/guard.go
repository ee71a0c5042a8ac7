package core

import (
	"github.com/ezrec/rvcore/platform"
)

// ValidStack is the stack guard: it reports whether a candidate stack
// pointer lies inside the platform RAM window. The lower bound is
// inclusive, the upper bound exclusive.
//
// It is a pure predicate over two compile-time constants and the candidate
// value, with no side effects and no stack use of its own, so it is safe
// to run at trap entry while the stack pointer is still untrusted.
func ValidStack(p *platform.Platform, sp uint64) bool {
	return sp >= p.RamBase && sp < p.RamEnd
}
