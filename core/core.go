package core

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/rvcore/console"
	"github.com/ezrec/rvcore/hart"
	"github.com/ezrec/rvcore/mem"
	"github.com/ezrec/rvcore/platform"
)

// Core binds the boot sequencer and trap vector to one hart and its bus,
// and to the two external collaborators: the runtime entry function and
// the trap dispatcher.
type Core struct {
	Verbose bool // Set to enable verbose logging.

	Platform *platform.Platform
	Hart     *hart.Hart
	Bus      *mem.Bus
	Sink     *console.Sink

	// Entry is the runtime entry function. It takes no arguments and by
	// contract never returns; if it does, Boot parks permanently.
	Entry func()

	// Dispatch is the external trap dispatcher. It takes no arguments,
	// reads the cause and status registers directly from the hart, and
	// returns normally to resume the interrupted execution.
	Dispatch func()
}

var _core_defines = map[string]string{
	"FRAME_SIZE": fmt.Sprintf("%v", FRAME_SIZE),
}

// New creates a core over an already-wired hart, bus, and console sink.
func New(p *platform.Platform, h *hart.Hart, bus *mem.Bus, sink *console.Sink) (c *Core) {
	c = &Core{
		Platform: p,
		Hart:     h,
		Bus:      bus,
		Sink:     sink,
	}

	return
}

// Defines returns an iterator over the core's named constants.
func (c *Core) Defines() iter.Seq2[string, string] {
	return maps.All(_core_defines)
}
