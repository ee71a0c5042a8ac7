package sim

import (
	"errors"

	"github.com/ezrec/rvcore/translate"
)

var f = translate.From

var (
	// Wiring errors
	ErrNoEntry    = errors.New(f("no runtime entry function"))
	ErrNoDispatch = errors.New(f("no trap dispatcher"))
)
