package mem

import (
	"io"
)

// UART register offsets. Only the transmit register is modeled; the core's
// console contract is a single one-byte store with no status handshake.
const (
	UART_TX = uint64(0x0) // Transmit holding register
)

// Uart models the memory-mapped transmit register. Each one-byte store to
// the transmit offset emits exactly one byte to Output and returns
// immediately. There is no buffering and no error path: a sink that drops
// the byte is indistinguishable from success, so write failures are
// swallowed here.
type Uart struct {
	Output io.Writer // Byte sink. May be nil to discard.

	Count int // Bytes transmitted since power-on.
}

var _ Device = (*Uart)(nil)

// Rewind clears the transmit counter.
func (u *Uart) Rewind() {
	u.Count = 0
}

// Load always reads zero; no status register is modeled.
func (u *Uart) Load(off uint64, size int) (value uint64, err error) {
	return
}

func (u *Uart) Store(off uint64, size int, value uint64) (err error) {
	if off != UART_TX || size != 1 {
		// Writes to unmodeled registers are dropped.
		return
	}

	u.Count++

	if u.Output != nil {
		u.Output.Write([]byte{byte(value)})
	}

	return
}
