// Package sim assembles the simulated machine: one hart, the physical bus
// with RAM, UART, and CLINT mapped at the platform addresses, and the
// privileged core wired to the runtime entry function and trap dispatcher.
// Execution is a bounded-step loop; traps are delivered at cycle boundaries
// the same way hardware preempts at instruction boundaries.
package sim

import (
	"iter"
	"log"

	"github.com/ezrec/rvcore/console"
	"github.com/ezrec/rvcore/core"
	"github.com/ezrec/rvcore/hart"
	"github.com/ezrec/rvcore/internal"
	"github.com/ezrec/rvcore/mem"
	"github.com/ezrec/rvcore/platform"
)

// Machine is the simulated machine state.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Platform *platform.Platform
	Hart     *hart.Hart
	Bus      *mem.Bus
	Ram      *mem.Ram
	Uart     *mem.Uart
	Clint    *mem.Clint
	Sink     *console.Sink
	Core     *core.Core

	// Handler is the external trap dispatcher body. The core's dispatch
	// contract (no arguments, ordinary return) is preserved; the machine
	// only counts invocations around it.
	Handler func()

	Dispatches int // Dispatcher invocations since reset.

	state State
	steps int
}

// New creates a machine for the given memory map. The platform is
// validated once here, before anything is mapped.
func New(p *platform.Platform) (m *Machine, err error) {
	err = p.Validate()
	if err != nil {
		return
	}

	m = &Machine{
		Platform: p,
		Bus:      &mem.Bus{},
		Uart:     &mem.Uart{},
		Clint:    &mem.Clint{},
	}

	m.Ram = mem.NewRam(p.RamEnd - p.RamBase)
	m.Bus.Map(p.RamBase, p.RamEnd-p.RamBase, m.Ram)
	m.Bus.Map(p.Uart0Base, platform.UART0_SIZE, m.Uart)
	m.Bus.Map(p.ClintBase, platform.CLINT_SIZE, m.Clint)
	m.Clint.Rewind()

	m.Hart = hart.New()
	m.Sink = &console.Sink{Bus: m.Bus, Addr: p.Uart0Base}

	m.Core = core.New(p, m.Hart, m.Bus, m.Sink)
	m.Core.Dispatch = func() {
		m.Dispatches++
		if m.Handler != nil {
			m.Handler()
		}
	}

	// Supervisor-level setup: the vector address must be installed
	// before any trap can be expected to arrive at the core.
	m.Hart.Mtvec = p.TrapVectorBase

	return
}

// Defines returns an iterator over all of the machine's named constants.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		m.Platform.Defines(),
		m.Core.Defines(),
	)
}

// Reset returns the machine to its power-on state. Register contents are
// scrambled from the seed; nothing may rely on them until boot writes them.
func (m *Machine) Reset(seed int64) {
	if m.Verbose {
		log.Printf("sim: reset seed=%v", seed)
	}

	m.Hart.Randomize(seed)
	m.Bus.Rewind()
	m.Hart.Mtvec = m.Platform.TrapVectorBase

	m.state = StateRunning
	m.steps = 0
	m.Dispatches = 0
}

// Boot runs the boot sequencer, which hands off to the runtime entry
// function. If the entry function returns, a violation of its contract,
// the machine parks in the boot halt state.
func (m *Machine) Boot() (err error) {
	if m.Core.Entry == nil {
		err = ErrNoEntry
		return
	}
	if m.Handler == nil {
		err = ErrNoDispatch
		return
	}

	m.Core.Verbose = m.Verbose
	m.Hart.Verbose = m.Verbose
	m.Bus.Verbose = m.Verbose

	outcome := m.Core.Boot()
	if outcome == core.OutcomeRuntimeReturn && m.state == StateRunning {
		m.state = StateBootHalt
	}

	return
}

// Step performs one simulated cycle. In a terminal state the program
// counter does not advance: the halt loops never exit.
func (m *Machine) Step() {
	m.steps++

	if m.state != StateRunning {
		return
	}

	m.Clint.Tick(1)
	m.syncInterrupts()

	if cause, ok := m.Hart.Pending(); ok {
		m.trap(cause)
		return
	}

	// One instruction retires.
	m.Hart.Pc += 4
}

// syncInterrupts mirrors the CLINT pending lines into mip.
func (m *Machine) syncInterrupts() {
	mip := m.Hart.Mip &^ (hart.MIP_MSIP | hart.MIP_MTIP)
	if m.Clint.SoftwarePending() {
		mip |= hart.MIP_MSIP
	}
	if m.Clint.TimerPending() {
		mip |= hart.MIP_MTIP
	}
	m.Hart.Mip = mip
}

// Ecall delivers a synchronous environment call at the current pc.
func (m *Machine) Ecall() {
	if m.state != StateRunning {
		return
	}

	m.trap(hart.CauseEcallM)
}

// trap performs hardware trap entry and runs the trap vector.
func (m *Machine) trap(cause hart.Cause) {
	m.Hart.Trap(cause, 0)

	switch m.Core.HandleTrap() {
	case core.OutcomeResume:
		// Resumed at the hardware-recorded return address.
	case core.OutcomeStackFault:
		m.state = StateStackFault
	}
}

// Run executes at most maxSteps cycles, stopping early once halted.
func (m *Machine) Run(maxSteps int) {
	for range maxSteps {
		if m.Halted() {
			return
		}
		m.Step()
	}
}

// State returns the current machine state.
func (m *Machine) State() State {
	return m.state
}

// Steps returns the cycles simulated since reset.
func (m *Machine) Steps() int {
	return m.steps
}

// Halted reports whether the machine is in a terminal state.
func (m *Machine) Halted() bool {
	return m.state != StateRunning
}
