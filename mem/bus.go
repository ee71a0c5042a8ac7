// Package mem provides the physical memory bus and device models for the
// simulated machine: a byte-backed RAM window, the UART transmit register,
// and the CLINT (software interrupt and timer registers). Devices are
// mapped into the bus at fixed physical addresses; any access outside a
// mapped window is a bus fault.
package mem

import (
	"errors"
	"log"
)

// Device is a memory-mapped peripheral or memory region on the bus.
type Device interface {
	// Rewind resets the device to its power-on state.
	Rewind()
	// Load reads size bytes (1, 4, or 8) at a device-relative offset.
	Load(off uint64, size int) (value uint64, err error)
	// Store writes size bytes (1, 4, or 8) at a device-relative offset.
	Store(off uint64, size int, value uint64) (err error)
}

type region struct {
	base uint64
	size uint64
	dev  Device
}

// Bus routes physical addresses to mapped devices.
type Bus struct {
	Verbose bool // Set to enable verbose logging.

	region []region
}

// Map attaches a device at [base, base+size).
func (b *Bus) Map(base uint64, size uint64, dev Device) {
	b.region = append(b.region, region{base: base, size: size, dev: dev})
}

// Rewind resets every mapped device to its power-on state.
func (b *Bus) Rewind() {
	for _, r := range b.region {
		r.dev.Rewind()
	}
}

func (b *Bus) find(addr uint64, size int) (r *region, err error) {
	for n := range b.region {
		r = &b.region[n]
		if addr >= r.base && addr+uint64(size) <= r.base+r.size {
			return
		}
	}

	r = nil
	err = errors.Join(ErrBusFault, ErrAccess{Addr: addr, Size: size})
	return
}

// Load reads size bytes (1, 4, or 8) from a physical address.
func (b *Bus) Load(addr uint64, size int) (value uint64, err error) {
	r, err := b.find(addr, size)
	if err != nil {
		return
	}

	value, err = r.dev.Load(addr-r.base, size)
	if b.Verbose {
		log.Printf("bus: load%d [%#x] -> %#x %v", size*8, addr, value, err)
	}

	return
}

// Store writes size bytes (1, 4, or 8) to a physical address.
func (b *Bus) Store(addr uint64, size int, value uint64) (err error) {
	r, err := b.find(addr, size)
	if err != nil {
		return
	}

	if b.Verbose {
		log.Printf("bus: store%d [%#x] <- %#x", size*8, addr, value)
	}

	err = r.dev.Store(addr-r.base, size, value)
	if err != nil {
		err = errors.Join(err, ErrAccess{Addr: addr, Size: size, Write: true})
	}

	return
}

// LoadByte reads one byte from a physical address.
func (b *Bus) LoadByte(addr uint64) (value byte, err error) {
	v64, err := b.Load(addr, 1)
	value = byte(v64)
	return
}

// StoreByte writes one byte to a physical address.
func (b *Bus) StoreByte(addr uint64, value byte) (err error) {
	return b.Store(addr, 1, uint64(value))
}

// LoadWord reads a 32-bit value from a physical address.
func (b *Bus) LoadWord(addr uint64) (value uint32, err error) {
	v64, err := b.Load(addr, 4)
	value = uint32(v64)
	return
}

// StoreWord writes a 32-bit value to a physical address.
func (b *Bus) StoreWord(addr uint64, value uint32) (err error) {
	return b.Store(addr, 4, uint64(value))
}

// LoadDouble reads a 64-bit value from a physical address.
func (b *Bus) LoadDouble(addr uint64) (value uint64, err error) {
	return b.Load(addr, 8)
}

// StoreDouble writes a 64-bit value to a physical address.
func (b *Bus) StoreDouble(addr uint64, value uint64) (err error) {
	return b.Store(addr, 8, value)
}
