package hart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCause(t *testing.T) {
	assert := assert.New(t)

	assert.True(CauseMachineSoftware.Interrupt())
	assert.Equal(uint64(3), CauseMachineSoftware.Code())

	assert.True(CauseMachineTimer.Interrupt())
	assert.Equal(uint64(7), CauseMachineTimer.Code())

	assert.False(CauseEcallM.Interrupt())
	assert.Equal(uint64(11), CauseEcallM.Code())

	assert.False(CauseIllegalInstr.Interrupt())
	assert.Equal(uint64(2), CauseIllegalInstr.Code())
}

func TestCauseString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("machine timer interrupt", CauseMachineTimer.String())
	assert.Equal("ecall from machine mode", CauseEcallM.String())
	assert.Equal("exception 5", CauseLoadFault.String())
	assert.Equal("interrupt 13", Cause(MCAUSE_INTERRUPT|13).String())
}
