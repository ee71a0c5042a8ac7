// Package console writes diagnostic bytes through the memory-mapped UART
// transmit register. Every helper reduces to one-byte stores with no
// buffering and no flow control, so the sink stays usable from paths that
// cannot trust the stack.
package console

import (
	"github.com/ezrec/rvcore/mem"
)

// Sink is the debug console: a bus plus the fixed transmit register address.
type Sink struct {
	Bus  *mem.Bus
	Addr uint64 // UART transmit register address.
}

// PutChar performs exactly one store to the transmit register. Bus faults
// are swallowed; a dropped diagnostic byte is indistinguishable from a
// delivered one at this layer.
func (s *Sink) PutChar(c byte) {
	_ = s.Bus.StoreByte(s.Addr, c)
}

// PutStr writes each byte of the string in order.
func (s *Sink) PutStr(text string) {
	for _, c := range []byte(text) {
		s.PutChar(c)
	}
}

// PutNewline writes a single newline.
func (s *Sink) PutNewline() {
	s.PutChar('\n')
}

// PutNumber writes an unsigned value in decimal.
func (s *Sink) PutNumber(num uint64) {
	if num == 0 {
		s.PutChar('0')
		return
	}

	var buffer [20]byte
	pos := 0
	for num > 0 {
		buffer[pos] = byte(num%10) + '0'
		num /= 10
		pos++
	}

	for pos > 0 {
		pos--
		s.PutChar(buffer[pos])
	}
}

const hexChars = "0123456789abcdef"

// PutHex writes a value as "0x" plus lowercase hex digits, no leading zeros.
func (s *Sink) PutHex(num uint64) {
	s.PutChar('0')
	s.PutChar('x')

	if num == 0 {
		s.PutChar('0')
		return
	}

	started := false
	for shift := 60; shift >= 0; shift -= 4 {
		nibble := (num >> shift) & 0xf
		if nibble != 0 {
			started = true
		}
		if started {
			s.PutChar(hexChars[nibble])
		}
	}
}
