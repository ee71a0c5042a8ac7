package mem

import (
	"encoding/binary"
)

// Ram is a byte-backed memory window.
type Ram struct {
	Data []byte
}

var _ Device = (*Ram)(nil)

// NewRam creates a RAM window of the given size in bytes.
func NewRam(size uint64) (ram *Ram) {
	ram = &Ram{
		Data: make([]byte, size),
	}

	return
}

// Rewind zeroes the window.
func (ram *Ram) Rewind() {
	clear(ram.Data)
}

func (ram *Ram) Load(off uint64, size int) (value uint64, err error) {
	if off+uint64(size) > uint64(len(ram.Data)) {
		err = ErrBusFault
		return
	}

	switch size {
	case 1:
		value = uint64(ram.Data[off])
	case 4:
		value = uint64(binary.LittleEndian.Uint32(ram.Data[off:]))
	case 8:
		value = binary.LittleEndian.Uint64(ram.Data[off:])
	default:
		err = ErrBusAccess
	}

	return
}

func (ram *Ram) Store(off uint64, size int, value uint64) (err error) {
	if off+uint64(size) > uint64(len(ram.Data)) {
		err = ErrBusFault
		return
	}

	switch size {
	case 1:
		ram.Data[off] = byte(value)
	case 4:
		binary.LittleEndian.PutUint32(ram.Data[off:], uint32(value))
	case 8:
		binary.LittleEndian.PutUint64(ram.Data[off:], value)
	default:
		err = ErrBusAccess
	}

	return
}
