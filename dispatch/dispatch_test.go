package dispatch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvcore/console"
	"github.com/ezrec/rvcore/hart"
	"github.com/ezrec/rvcore/mem"
	"github.com/ezrec/rvcore/platform"
)

func testHandler() (hd *Handler, clint *mem.Clint, output *bytes.Buffer) {
	p := platform.Default()

	bus := &mem.Bus{}
	output = &bytes.Buffer{}
	bus.Map(p.Uart0Base, platform.UART0_SIZE, &mem.Uart{Output: output})

	clint = &mem.Clint{}
	clint.Rewind()
	bus.Map(p.ClintBase, platform.CLINT_SIZE, clint)

	hd = &Handler{
		Hart:     hart.New(),
		Bus:      bus,
		Sink:     &console.Sink{Bus: bus, Addr: p.Uart0Base},
		Platform: p,
	}

	return
}

func TestHandle_Software(t *testing.T) {
	assert := assert.New(t)

	hd, clint, output := testHandler()

	clint.Msip = 1
	hd.Hart.Mcause = uint64(hart.CauseMachineSoftware)

	hd.Handle()

	assert.Equal("[SW]S\n", output.String())

	// msip is cleared so the interrupt does not refire.
	assert.False(clint.SoftwarePending())
}

func TestHandle_Timer(t *testing.T) {
	assert := assert.New(t)

	hd, clint, output := testHandler()
	hd.TimerInterval = 100

	clint.Mtime = 5000
	clint.Mtimecmp = 5000
	assert.True(clint.TimerPending())

	hd.Hart.Mcause = uint64(hart.CauseMachineTimer)
	hd.Handle()

	assert.Equal("[TIM]T\n", output.String())

	// The compare register moves one interval past now, clearing the
	// pending line.
	assert.Equal(uint64(5100), clint.Mtimecmp)
	assert.False(clint.TimerPending())
}

func TestHandle_Ecall(t *testing.T) {
	assert := assert.New(t)

	hd, _, output := testHandler()

	hd.Hart.Mepc = 0x80004000
	hd.Hart.Mcause = uint64(hart.CauseEcallM)

	hd.Handle()

	assert.Equal("E\n", output.String())

	// Resume past the ecall instruction.
	assert.Equal(uint64(0x80004004), hd.Hart.Mepc)
}

func TestHandle_Unknown(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		mcause hart.Cause
		mepc   uint64
		want   string
	}){
		{"illegal_instr", hart.CauseIllegalInstr, 0x80000040, "?E2@4\n"},
		{"store_fault", hart.CauseStoreFault, 0x800000a0, "?E7@a\n"},
		{"ext_interrupt", hart.CauseMachineExternal, 0, "?I0b@0\n"},
		{"high_interrupt", hart.Cause(hart.MCAUSE_INTERRUPT | 13), 0, "?I0d@0\n"},
	}

	for _, entry := range table {
		hd, _, output := testHandler()

		hd.Hart.Mcause = uint64(entry.mcause)
		hd.Hart.Mepc = entry.mepc

		hd.Handle()

		assert.Equal(entry.want, output.String(), entry.name)
	}
}
