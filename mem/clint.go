package mem

// CLINT register offsets, hart 0.
const (
	CLINT_MSIP     = uint64(0x0)    // Machine software interrupt pending (u32)
	CLINT_MTIMECMP = uint64(0x4000) // Machine timer compare (u64)
	CLINT_MTIME    = uint64(0xBFF8) // Machine time (u64)
)

// Clint models the Core-Local Interruptor: the machine software interrupt
// pending register and the timer compare/count pair. The time register
// advances once per simulated cycle via Tick.
type Clint struct {
	Msip     uint32
	Mtime    uint64
	Mtimecmp uint64
}

var _ Device = (*Clint)(nil)

// Rewind returns to the power-on state: no software interrupt pending and
// the compare register parked at its maximum so no timer interrupt fires
// until one is programmed.
func (c *Clint) Rewind() {
	c.Msip = 0
	c.Mtime = 0
	c.Mtimecmp = ^uint64(0)
}

// Tick advances the time register by the given number of cycles.
func (c *Clint) Tick(cycles uint64) {
	c.Mtime += cycles
}

// SoftwarePending reports whether a machine software interrupt is pending.
func (c *Clint) SoftwarePending() bool {
	return c.Msip != 0
}

// TimerPending reports whether the timer has reached the compare value.
func (c *Clint) TimerPending() bool {
	return c.Mtime >= c.Mtimecmp
}

func (c *Clint) Load(off uint64, size int) (value uint64, err error) {
	switch off {
	case CLINT_MSIP:
		value = uint64(c.Msip)
	case CLINT_MTIMECMP:
		value = c.Mtimecmp
	case CLINT_MTIME:
		value = c.Mtime
	default:
		err = ErrBusFault
	}

	return
}

func (c *Clint) Store(off uint64, size int, value uint64) (err error) {
	switch off {
	case CLINT_MSIP:
		// Only bit 0 is implemented.
		c.Msip = uint32(value) & 1
	case CLINT_MTIMECMP:
		c.Mtimecmp = value
	case CLINT_MTIME:
		c.Mtime = value
	default:
		err = ErrBusFault
	}

	return
}
