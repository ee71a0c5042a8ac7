package core

import (
	"log"

	"github.com/ezrec/rvcore/hart"
)

// Diagnostic bytes emitted by the trap vector.
const (
	TRACE_BYTE = byte('T') // Valid trap entry
	FAULT_BYTE = byte('S') // Stack guard rejection
)

// HandleTrap is the trap vector body. Hardware has already performed trap
// entry (mepc and mcause recorded, interrupts disabled, control redirected
// here); HandleTrap saves the register snapshot, calls the external
// dispatcher, restores the snapshot bit-for-bit, and returns from the trap.
//
// The vector never interprets the trap cause. It resumes unconditionally
// after the dispatcher returns; a dispatcher that wants to terminate
// execution must itself diverge.
func (c *Core) HandleTrap() (outcome Outcome) {
	h := c.Hart

	// The stack guard runs before anything touches memory through sp.
	sp := h.Reg(hart.RegSp)
	if !ValidStack(c.Platform, sp) {
		// A stack pointer outside RAM must not be written through under
		// any circumstance. Report and stop for good: continuing with a
		// bad stack corrupts memory silently somewhere else.
		c.Sink.PutChar(FAULT_BYTE)
		c.Sink.PutChar('\n')
		if c.Verbose {
			log.Printf("core: stack fault sp=%#x", sp)
		}
		outcome = OutcomeStackFault
		return
	}

	// Best-effort trace byte; not required for correctness.
	c.Sink.PutChar(TRACE_BYTE)

	// Save the snapshot at fixed offsets in a freshly reserved frame.
	// The guard is deliberately coarse: a frame that still misses RAM
	// faults on the bus, exactly as the stores would on hardware.
	sp -= FRAME_SIZE
	for _, s := range saveSet {
		_ = c.Bus.StoreDouble(sp+s.off, h.Reg(s.reg))
	}
	h.SetReg(hart.RegSp, sp)

	// The dispatcher takes no arguments; it reads whatever cause and
	// status registers it needs directly from the hart.
	c.Dispatch()

	// Restore walks the save set in exactly the reverse order of the
	// save, then pops the frame so sp is bit-for-bit its pre-trap value.
	sp = h.Reg(hart.RegSp)
	for n := len(saveSet) - 1; n >= 0; n-- {
		s := saveSet[n]
		value, _ := c.Bus.LoadDouble(sp + s.off)
		h.SetReg(s.reg, value)
	}
	h.SetReg(hart.RegSp, sp+FRAME_SIZE)

	h.Mret()

	outcome = OutcomeResume
	return
}
