package hart

import (
	"fmt"
	"log"
	"math/rand"
)

// Hart is the simulation state for one RV64 hardware thread.
type Hart struct {
	Verbose bool // Set to enable verbose logging.

	X  [32]uint64 // Integer register file. x0 reads as zero.
	Pc uint64     // Program counter.

	// Machine-mode CSRs.
	Mstatus uint64
	Mtvec   uint64
	Mepc    uint64
	Mcause  uint64
	Mtval   uint64
	Mie     uint64
	Mip     uint64
}

// New creates a hart with all state zeroed.
func New() (h *Hart) {
	h = &Hart{}

	return
}

// Reg reads an integer register. x0 always reads as zero.
func (h *Hart) Reg(r Reg) (value uint64) {
	if r == RegZero {
		return
	}

	value = h.X[r]
	return
}

// SetReg writes an integer register. Writes to x0 are discarded.
func (h *Hart) SetReg(r Reg, value uint64) {
	if r == RegZero {
		return
	}

	h.X[r] = value
}

// Randomize scrambles every register, the program counter, and the CSRs.
// Power-on register contents are unspecified; boot code must not read any
// register before writing it, and the tests hold it to that.
func (h *Hart) Randomize(seed int64) {
	rands := rand.New(rand.NewSource(seed))

	for n := range h.X {
		h.X[n] = rands.Uint64()
	}
	h.X[RegZero] = 0

	h.Pc = rands.Uint64()
	h.Mepc = rands.Uint64()
	h.Mcause = rands.Uint64()
	h.Mtval = rands.Uint64()
	h.Mstatus = 0
	h.Mie = 0
	h.Mip = 0
}

// Trap performs hardware trap entry: the interrupted pc is recorded in
// mepc, the cause in mcause, the global interrupt enable is stacked into
// MPIE and cleared, and control moves to the vector at mtvec. This is the
// automatic MIE clear the trap vector relies on; nothing in the core saves
// an interrupt-enable flag itself.
func (h *Hart) Trap(cause Cause, tval uint64) {
	if h.Verbose {
		log.Printf("hart: trap %v pc=%#x", cause, h.Pc)
	}

	h.Mepc = h.Pc
	h.Mcause = uint64(cause)
	h.Mtval = tval

	h.Mstatus &^= MSTATUS_MPIE
	if (h.Mstatus & MSTATUS_MIE) != 0 {
		h.Mstatus |= MSTATUS_MPIE
	}
	h.Mstatus &^= MSTATUS_MIE
	h.Mstatus |= MSTATUS_MPP

	h.Pc = h.Mtvec
}

// Mret performs the privileged return-from-trap operation: execution
// resumes at the address recorded at trap entry and the stacked interrupt
// enable is restored.
func (h *Hart) Mret() {
	h.Pc = h.Mepc

	h.Mstatus &^= MSTATUS_MIE
	if (h.Mstatus & MSTATUS_MPIE) != 0 {
		h.Mstatus |= MSTATUS_MIE
	}
	h.Mstatus |= MSTATUS_MPIE

	if h.Verbose {
		log.Printf("hart: mret pc=%#x", h.Pc)
	}
}

// InterruptsEnabled reports the global machine interrupt enable.
func (h *Hart) InterruptsEnabled() bool {
	return (h.Mstatus & MSTATUS_MIE) != 0
}

// Pending returns the highest-priority enabled pending interrupt.
// Hardware priority order is external, software, timer.
func (h *Hart) Pending() (cause Cause, ok bool) {
	if !h.InterruptsEnabled() {
		return
	}

	pending := h.Mip & h.Mie
	switch {
	case (pending & MIP_MEIP) != 0:
		cause, ok = CauseMachineExternal, true
	case (pending & MIP_MSIP) != 0:
		cause, ok = CauseMachineSoftware, true
	case (pending & MIP_MTIP) != 0:
		cause, ok = CauseMachineTimer, true
	}

	return
}

// String returns the register file as a string, one register per line.
func (h *Hart) String() (text string) {
	text = fmt.Sprintf("% 7s: %016x\n", "pc", h.Pc)
	for n := range h.X {
		text += fmt.Sprintf("% 7s: %016x\n", Reg(n), h.Reg(Reg(n)))
	}
	for _, csr := range []struct {
		name  string
		value uint64
	}{
		{"mstatus", h.Mstatus},
		{"mtvec", h.Mtvec},
		{"mepc", h.Mepc},
		{"mcause", h.Mcause},
	} {
		text += fmt.Sprintf("% 7s: %016x\n", csr.name, csr.value)
	}

	return
}
