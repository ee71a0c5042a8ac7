// Package hart models the state of a single RV64 hardware thread.
//
// The hart consists of the 32-entry integer register file (x0 hard-wired to
// zero), the program counter, and the machine-mode control and status
// registers the privileged core depends on (mstatus, mtvec, mepc, mcause,
// mtval, mie, mip). Trap entry and the return-from-trap operation are the
// only two transitions that touch the global interrupt enable bits, matching
// the hardware contract the core relies on.
package hart
