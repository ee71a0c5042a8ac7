package hart

import (
	"fmt"
)

// mstatus bit fields.
const (
	MSTATUS_MIE  = uint64(1) << 3  // Machine interrupt enable
	MSTATUS_MPIE = uint64(1) << 7  // Previous interrupt enable
	MSTATUS_MPP  = uint64(3) << 11 // Previous privilege mode (11 = machine)
)

// mie / mip bit fields.
const (
	MIE_MSIE = uint64(1) << 3  // Machine software interrupt enable
	MIE_MTIE = uint64(1) << 7  // Machine timer interrupt enable
	MIE_MEIE = uint64(1) << 11 // Machine external interrupt enable

	MIP_MSIP = uint64(1) << 3  // Machine software interrupt pending
	MIP_MTIP = uint64(1) << 7  // Machine timer interrupt pending
	MIP_MEIP = uint64(1) << 11 // Machine external interrupt pending
)

// mcause layout.
const (
	MCAUSE_INTERRUPT = uint64(1) << 63        // Interrupt (vs exception) bit
	MCAUSE_CODE      = ^MCAUSE_INTERRUPT      // Exception code mask
)

// Cause is a raw mcause value.
type Cause uint64

// Interrupt causes.
const (
	CauseMachineSoftware = Cause(MCAUSE_INTERRUPT | 3)
	CauseMachineTimer    = Cause(MCAUSE_INTERRUPT | 7)
	CauseMachineExternal = Cause(MCAUSE_INTERRUPT | 11)
)

// Exception causes.
const (
	CauseInstrMisaligned = Cause(0)
	CauseInstrFault      = Cause(1)
	CauseIllegalInstr    = Cause(2)
	CauseBreakpoint      = Cause(3)
	CauseLoadMisaligned  = Cause(4)
	CauseLoadFault       = Cause(5)
	CauseStoreMisaligned = Cause(6)
	CauseStoreFault      = Cause(7)
	CauseEcallU          = Cause(8)
	CauseEcallS          = Cause(9)
	CauseEcallM          = Cause(11)
)

// Interrupt reports whether the cause is an asynchronous interrupt.
func (c Cause) Interrupt() bool {
	return (uint64(c) & MCAUSE_INTERRUPT) != 0
}

// Code returns the exception code with the interrupt bit stripped.
func (c Cause) Code() uint64 {
	return uint64(c) & MCAUSE_CODE
}

func (c Cause) String() string {
	switch c {
	case CauseMachineSoftware:
		return "machine software interrupt"
	case CauseMachineTimer:
		return "machine timer interrupt"
	case CauseMachineExternal:
		return "machine external interrupt"
	case CauseIllegalInstr:
		return "illegal instruction"
	case CauseBreakpoint:
		return "breakpoint"
	case CauseEcallM:
		return "ecall from machine mode"
	}

	kind := "exception"
	if c.Interrupt() {
		kind = "interrupt"
	}

	return fmt.Sprintf("%s %d", kind, c.Code())
}
