package mem

import (
	"errors"

	"github.com/ezrec/rvcore/translate"
)

var f = translate.From

var (
	// Bus errors
	ErrBusFault  = errors.New(f("bus fault"))
	ErrBusAccess = errors.New(f("access size invalid"))
)

// ErrAccess carries the faulting address and access shape.
type ErrAccess struct {
	Addr  uint64
	Size  int
	Write bool
}

func (err ErrAccess) Error() string {
	kind := "load"
	if err.Write {
		kind = "store"
	}
	return f("%v of %v bytes at %#x", kind, err.Size, err.Addr)
}
