package platform

import (
	"errors"

	"github.com/ezrec/rvcore/translate"
)

var f = translate.From

var (
	// Memory map constraint errors
	ErrRamWindow     = errors.New(f("ram window empty or inverted"))
	ErrStackWindow   = errors.New(f("stack top outside ram window"))
	ErrStackAlign    = errors.New(f("stack top not 16-byte aligned"))
	ErrVectorAlign   = errors.New(f("trap vector not 4-byte aligned"))
	ErrDeviceOverlap = errors.New(f("device window overlaps ram"))

	// Platform file errors
	ErrScriptValue = errors.New(f("platform value is not an address"))
)

// ErrConstraint reports which named constant violated which constraint.
type ErrConstraint struct {
	Name  string
	Value uint64
	Err   error
}

func (err ErrConstraint) Error() string {
	return f("%v=%#x: %v", err.Name, err.Value, err.Err)
}

func (err ErrConstraint) Unwrap() error {
	return err.Err
}
