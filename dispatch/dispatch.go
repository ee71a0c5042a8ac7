// Package dispatch provides a reference trap dispatcher. The trap vector
// calls it with no arguments; it reads the cause and status registers
// directly from the hart, handles the causes the runtime cares about, and
// returns normally so the vector resumes the interrupted execution.
//
// The core never depends on this package; any dispatcher with the same
// no-argument contract can be wired in its place.
package dispatch

import (
	"log"

	"github.com/ezrec/rvcore/console"
	"github.com/ezrec/rvcore/hart"
	"github.com/ezrec/rvcore/mem"
	"github.com/ezrec/rvcore/platform"
)

// DEFAULT_TIMER_INTERVAL is the cycle count between timer interrupts once
// the timer has been programmed.
const DEFAULT_TIMER_INTERVAL = uint64(10_000)

// Handler dispatches machine-mode traps.
type Handler struct {
	Verbose bool // Set to enable verbose logging.

	Hart     *hart.Hart
	Bus      *mem.Bus
	Sink     *console.Sink
	Platform *platform.Platform

	// TimerInterval is the rearm distance for timer interrupts.
	// Zero selects DEFAULT_TIMER_INTERVAL.
	TimerInterval uint64
}

// Handle processes one trap. It must not re-enable interrupts: the
// hardware's automatic disable is the only thing standing between the
// dispatcher and a nested trap frame.
func (hd *Handler) Handle() {
	cause := hart.Cause(hd.Hart.Mcause)

	if hd.Verbose {
		log.Printf("dispatch: %v mepc=%#x", cause, hd.Hart.Mepc)
	}

	switch cause {
	case hart.CauseMachineSoftware:
		hd.Sink.PutStr("[SW]")
		// Clear msip before returning or the same interrupt refires on
		// the next cycle.
		_ = hd.Bus.StoreWord(hd.Platform.ClintBase+mem.CLINT_MSIP, 0)
		hd.Sink.PutStr("S\n")

	case hart.CauseMachineTimer:
		hd.Sink.PutStr("[TIM]")
		hd.rearmTimer()
		hd.Sink.PutStr("T\n")

	case hart.CauseEcallM:
		// Resume past the ecall instruction.
		hd.Hart.Mepc += 4
		hd.Sink.PutStr("E\n")

	default:
		hd.unknown(cause)
	}
}

// rearmTimer pushes the compare register one interval past the current
// time, which also clears the pending timer interrupt.
func (hd *Handler) rearmTimer() {
	interval := hd.TimerInterval
	if interval == 0 {
		interval = DEFAULT_TIMER_INTERVAL
	}

	mtime := hd.Platform.ClintBase + mem.CLINT_MTIME
	mtimecmp := hd.Platform.ClintBase + mem.CLINT_MTIMECMP

	now, err := hd.Bus.LoadDouble(mtime)
	if err != nil {
		return
	}
	_ = hd.Bus.StoreDouble(mtimecmp, now+interval)
}

// unknown emits the diagnostic byte protocol for causes the runtime has no
// handler for: '?', 'I' or 'E', the exception code in lowercase hex, '@',
// and one address nibble of mepc.
func (hd *Handler) unknown(cause hart.Cause) {
	hd.Sink.PutChar('?')

	code := cause.Code()
	if cause.Interrupt() {
		hd.Sink.PutChar('I')
		hd.Sink.PutChar(hexDigit(code >> 4))
		hd.Sink.PutChar(hexDigit(code))
	} else {
		hd.Sink.PutChar('E')
		hd.Sink.PutChar(hexDigit(code))
	}

	hd.Sink.PutChar('@')
	hd.Sink.PutChar(hexDigit(hd.Hart.Mepc >> 4))
	hd.Sink.PutNewline()
}

func hexDigit(value uint64) byte {
	value &= 0xf
	if value < 10 {
		return '0' + byte(value)
	}
	return 'a' + byte(value-10)
}
