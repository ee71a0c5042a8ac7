package core

import (
	"github.com/ezrec/rvcore/hart"
)

// FRAME_SIZE is the trap frame size in bytes. The calling convention
// requires the stack pointer to stay 16-byte aligned.
const FRAME_SIZE = uint64(16 * 8)

// slot binds one snapshot register to its fixed frame offset.
type slot struct {
	reg hart.Reg
	off uint64
}

// saveSet is the register snapshot layout: the return address plus the
// full caller-and-argument register set. The save path walks this list
// forward and the restore path walks the same list backward, so the two
// cannot drift apart.
var saveSet = []slot{
	{hart.RegRa, 0},
	{hart.RegT0, 8},
	{hart.RegT1, 16},
	{hart.RegT2, 24},
	{hart.RegA0, 32},
	{hart.RegA1, 40},
	{hart.RegA2, 48},
	{hart.RegA3, 56},
	{hart.RegA4, 64},
	{hart.RegA5, 72},
	{hart.RegA6, 80},
	{hart.RegA7, 88},
	{hart.RegT3, 96},
	{hart.RegT4, 104},
	{hart.RegT5, 112},
	{hart.RegT6, 120},
}

func init() {
	if FRAME_SIZE%16 != 0 {
		panic("trap frame not 16-byte aligned")
	}
	if uint64(len(saveSet))*8 != FRAME_SIZE {
		panic("save set does not fill the trap frame")
	}

	seen := map[hart.Reg]bool{}
	for n, s := range saveSet {
		if s.off != uint64(n)*8 {
			panic("save set offsets not dense")
		}
		if seen[s.reg] {
			panic("register saved twice")
		}
		seen[s.reg] = true
	}
}

// SnapshotRegs returns the registers covered by the trap frame, in save
// order.
func SnapshotRegs() (regs []hart.Reg) {
	for _, s := range saveSet {
		regs = append(regs, s.reg)
	}

	return
}
