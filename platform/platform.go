// Package platform describes the physical memory map the core is built for.
//
// All addresses the privileged core touches (the RAM window, the initial
// stack top, the global pointer base, the trap vector base, and the
// memory-mapped UART and CLINT) are named constants collected in a Platform
// and validated once against each other before any machine is wired up.
// The defaults match the QEMU riscv64 "virt" machine.
package platform

import (
	"fmt"
	"iter"
	"maps"
)

// QEMU virt machine defaults.
const (
	RAM_BASE = uint64(0x8000_0000)          // Start of main RAM
	RAM_SIZE = uint64(128 * 1024 * 1024)    // 128 MiB
	RAM_END  = RAM_BASE + RAM_SIZE          // End of main RAM (exclusive)

	STACK_TOP   = uint64(0x8010_0000) // Initial stack top
	GP_BASE     = RAM_BASE + 0x800    // Global pointer base (link-time constant)
	VECTOR_BASE = RAM_BASE + 0x100    // Trap vector address (4-byte aligned)

	UART0_BASE = uint64(0x1000_0000) // UART transmit register
	UART0_SIZE = uint64(0x100)

	CLINT_BASE      = uint64(0x0200_0000) // Core-Local Interruptor
	CLINT_SIZE      = uint64(0x1_0000)
	MSIP_OFFSET     = uint64(0x0)    // Machine software interrupt pending
	MTIMECMP_OFFSET = uint64(0x4000) // Machine timer compare
	MTIME_OFFSET    = uint64(0xBFF8) // Machine time
)

// Platform is the memory map for one target machine.
type Platform struct {
	RamBase           uint64 // Start of the valid RAM window.
	RamEnd            uint64 // End of the valid RAM window (exclusive).
	StackTop          uint64 // Initial stack pointer set by the boot sequencer.
	GlobalPointerBase uint64 // Link-time global pointer base.
	TrapVectorBase    uint64 // Address installed into mtvec.
	Uart0Base         uint64 // UART transmit register address.
	ClintBase         uint64 // CLINT base address.
}

// Default returns the QEMU virt machine memory map.
func Default() (p *Platform) {
	p = &Platform{
		RamBase:           RAM_BASE,
		RamEnd:            RAM_END,
		StackTop:          STACK_TOP,
		GlobalPointerBase: GP_BASE,
		TrapVectorBase:    VECTOR_BASE,
		Uart0Base:         UART0_BASE,
		ClintBase:         CLINT_BASE,
	}

	return
}

// fields maps define names to their Platform fields, for Defines() and
// for the starlark platform file loader.
func (p *Platform) fields() map[string]*uint64 {
	return map[string]*uint64{
		"RAM_BASE":    &p.RamBase,
		"RAM_END":     &p.RamEnd,
		"STACK_TOP":   &p.StackTop,
		"GP_BASE":     &p.GlobalPointerBase,
		"VECTOR_BASE": &p.TrapVectorBase,
		"UART0_BASE":  &p.Uart0Base,
		"CLINT_BASE":  &p.ClintBase,
	}
}

// Defines returns an iterator over the platform's named constants.
func (p *Platform) Defines() iter.Seq2[string, string] {
	defines := map[string]string{}
	for name, ptr := range p.fields() {
		defines[name] = fmt.Sprintf("%#x", *ptr)
	}

	return maps.All(defines)
}

// Validate checks the memory map once against the constraints the core
// depends on. Every machine wiring runs this before first use.
func (p *Platform) Validate() (err error) {
	if p.RamBase >= p.RamEnd {
		err = ErrConstraint{"RAM_BASE", p.RamBase, ErrRamWindow}
		return
	}

	if p.StackTop <= p.RamBase || p.StackTop > p.RamEnd {
		err = ErrConstraint{"STACK_TOP", p.StackTop, ErrStackWindow}
		return
	}

	if p.StackTop%16 != 0 {
		err = ErrConstraint{"STACK_TOP", p.StackTop, ErrStackAlign}
		return
	}

	// The vector is reached by direct hardware redirection, not a call,
	// so it must satisfy the minimum instruction alignment.
	if p.TrapVectorBase%4 != 0 {
		err = ErrConstraint{"VECTOR_BASE", p.TrapVectorBase, ErrVectorAlign}
		return
	}

	if p.GlobalPointerBase < p.RamBase || p.GlobalPointerBase >= p.RamEnd {
		err = ErrConstraint{"GP_BASE", p.GlobalPointerBase, ErrRamWindow}
		return
	}

	for _, mmio := range []struct {
		name string
		base uint64
		size uint64
	}{
		{"UART0_BASE", p.Uart0Base, UART0_SIZE},
		{"CLINT_BASE", p.ClintBase, CLINT_SIZE},
	} {
		if mmio.base+mmio.size > p.RamBase && mmio.base < p.RamEnd {
			err = ErrConstraint{mmio.name, mmio.base, ErrDeviceOverlap}
			return
		}
	}

	return
}
