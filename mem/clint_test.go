package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClint_Software(t *testing.T) {
	assert := assert.New(t)

	clint := &Clint{}
	clint.Rewind()
	assert.False(clint.SoftwarePending())

	assert.NoError(clint.Store(CLINT_MSIP, 4, 1))
	assert.True(clint.SoftwarePending())

	// Only bit 0 is implemented.
	assert.NoError(clint.Store(CLINT_MSIP, 4, 0xfffffffe))
	assert.False(clint.SoftwarePending())

	assert.NoError(clint.Store(CLINT_MSIP, 4, 1))
	assert.NoError(clint.Store(CLINT_MSIP, 4, 0))
	assert.False(clint.SoftwarePending())
}

func TestClint_Timer(t *testing.T) {
	assert := assert.New(t)

	clint := &Clint{}
	clint.Rewind()

	// Powers on with the compare register parked; no interrupt.
	clint.Tick(1000)
	assert.False(clint.TimerPending())

	assert.NoError(clint.Store(CLINT_MTIMECMP, 8, 1016))
	assert.False(clint.TimerPending())

	clint.Tick(15)
	assert.False(clint.TimerPending())
	clint.Tick(1)
	assert.True(clint.TimerPending())

	// Rearming past the current time clears it.
	now, err := clint.Load(CLINT_MTIME, 8)
	assert.NoError(err)
	assert.NoError(clint.Store(CLINT_MTIMECMP, 8, now+100))
	assert.False(clint.TimerPending())
}

func TestClint_Fault(t *testing.T) {
	assert := assert.New(t)

	clint := &Clint{}
	clint.Rewind()

	_, err := clint.Load(0x8, 8)
	assert.ErrorIs(err, ErrBusFault)

	err = clint.Store(0x2000, 8, 0)
	assert.ErrorIs(err, ErrBusFault)
}
