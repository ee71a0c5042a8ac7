package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvcore/hart"
)

func TestHandleTrap_Valid(t *testing.T) {
	assert := assert.New(t)

	c, _, output := testCore(t)
	h := c.Hart
	p := c.Platform

	h.Randomize(7)
	h.Mtvec = p.TrapVectorBase
	h.Pc = p.RamBase + 0x4000
	h.SetReg(hart.RegSp, p.RamBase+4096)

	before := h.X
	pc := h.Pc

	// The dispatcher clobbers every snapshot register; the vector must
	// hide that completely.
	dispatched := 0
	c.Dispatch = func() {
		dispatched++
		for _, r := range SnapshotRegs() {
			h.SetReg(r, 0xdeadbeef)
		}
	}

	h.Trap(hart.CauseEcallM, 0)
	outcome := c.HandleTrap()

	assert.Equal(OutcomeResume, outcome)
	assert.Equal(1, dispatched)

	// Every register, including sp, is bit-for-bit its pre-trap value.
	assert.Equal(before, h.X)

	// Resumed at the hardware-recorded return address.
	assert.Equal(pc, h.Pc)

	// One best-effort trace byte.
	assert.Equal([]byte{'T'}, output.Bytes())
}

func TestHandleTrap_SpExact(t *testing.T) {
	assert := assert.New(t)

	c, _, _ := testCore(t)
	h := c.Hart
	p := c.Platform

	// Odd but in-window stack pointers still round-trip exactly.
	for _, sp := range []uint64{
		p.RamBase + FRAME_SIZE,
		p.StackTop,
		p.RamEnd - 1,
		p.RamBase + 4096 + 3,
	} {
		h.Randomize(int64(sp))
		h.Mtvec = p.TrapVectorBase
		h.SetReg(hart.RegSp, sp)
		c.Dispatch = func() {}

		h.Trap(hart.CauseMachineTimer, 0)
		assert.Equal(OutcomeResume, c.HandleTrap())
		assert.Equal(sp, h.Reg(hart.RegSp))
	}
}

func TestHandleTrap_Invalid(t *testing.T) {
	assert := assert.New(t)

	c, ram, output := testCore(t)
	h := c.Hart
	p := c.Platform

	for _, sp := range []uint64{
		p.RamEnd, // exclusive upper bound
		p.RamBase - 1,
		0,
		^uint64(0),
		p.Uart0Base,
	} {
		output.Reset()
		h.Randomize(int64(sp))
		h.Mtvec = p.TrapVectorBase
		h.SetReg(hart.RegSp, sp)

		before := h.X
		snapshot := bytes.Clone(ram.Data)

		dispatched := 0
		c.Dispatch = func() { dispatched++ }

		h.Trap(hart.CauseEcallM, 0)
		outcome := c.HandleTrap()

		// Unrecoverable: report, never dispatch, never touch memory
		// through sp.
		assert.Equal(OutcomeStackFault, outcome)
		assert.Equal(0, dispatched)
		assert.Equal([]byte{'S', '\n'}, output.Bytes())
		assert.Equal(snapshot, ram.Data)
		assert.Equal(before, h.X)
	}
}

func TestHandleTrap_CalleeSavedUntouched(t *testing.T) {
	assert := assert.New(t)

	c, _, _ := testCore(t)
	h := c.Hart
	p := c.Platform

	h.Randomize(21)
	h.Mtvec = p.TrapVectorBase
	h.SetReg(hart.RegSp, p.StackTop)
	h.SetReg(hart.RegS1, 0x5151)
	h.SetReg(hart.RegS11, 0x1111)

	c.Dispatch = func() {}

	h.Trap(hart.CauseMachineSoftware, 0)
	assert.Equal(OutcomeResume, c.HandleTrap())

	// The vector does not save the callee-saved set; the dispatcher's ABI
	// preserves it, so it passes through unmodified.
	assert.Equal(uint64(0x5151), h.Reg(hart.RegS1))
	assert.Equal(uint64(0x1111), h.Reg(hart.RegS11))
}
