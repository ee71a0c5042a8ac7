package core

import (
	"log"

	"github.com/ezrec/rvcore/hart"
)

// Boot establishes the initial machine register state and transfers
// control to the runtime entry function. It runs exactly once at power-on.
//
// Power-on register contents are completely unspecified, so every register
// is written before any read. The step order matters: nothing below the
// stack pointer assignment may run without it.
func (c *Core) Boot() (outcome Outcome) {
	h := c.Hart
	p := c.Platform

	// 1. Stack pointer to the reserved initial stack top.
	h.SetReg(hart.RegSp, p.StackTop)

	// 2. A zero frame pointer marks "no caller" for unwinders.
	h.SetReg(hart.RegFp, 0)

	// 3. gp-relative (relaxed) addressing is unusable until gp holds its
	// final value, so the global pointer base is loaded absolutely.
	h.SetReg(hart.RegGp, p.GlobalPointerBase)

	// 4. Zero the scratch set for deterministic startup.
	for _, s := range saveSet {
		h.SetReg(s.reg, 0)
	}

	h.Pc = p.RamBase

	if c.Verbose {
		log.Printf("core: boot sp=%#x gp=%#x", h.Reg(hart.RegSp), h.Reg(hart.RegGp))
	}

	// 5. Hand off to the runtime with no arguments.
	c.Entry()

	// The runtime returned, which its contract forbids. There is no error
	// path here: park in the low-power wait loop and never proceed.
	if c.Verbose {
		log.Printf("core: runtime entry returned; halting")
	}
	outcome = OutcomeRuntimeReturn
	return
}
