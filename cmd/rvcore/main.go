package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/rvcore/dispatch"
	"github.com/ezrec/rvcore/hart"
	"github.com/ezrec/rvcore/mem"
	"github.com/ezrec/rvcore/platform"
	"github.com/ezrec/rvcore/sim"
)

func main() {
	var platfile string
	var steps int
	var seed int64
	var verbose bool
	var defines bool

	flag.StringVar(&platfile, "p", "", ".star platform file")
	flag.IntVar(&steps, "n", 100_000, "Maximum simulated cycles")
	flag.Int64Var(&seed, "seed", 1, "Power-on register scramble seed")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&defines, "D", false, "Print the platform defines and exit")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	plat := platform.Default()
	if len(platfile) != 0 {
		err := plat.Load(platfile)
		if err != nil {
			log.Fatalf("%v: %v", platfile, err)
		}
	}

	m, err := sim.New(plat)
	if err != nil {
		log.Fatal(err)
	}
	m.Verbose = verbose
	m.Uart.Output = os.Stdout

	if defines {
		for key, value := range m.Defines() {
			fmt.Printf("%v=%v\n", key, value)
		}
		return
	}

	handler := &dispatch.Handler{
		Verbose:  verbose,
		Hart:     m.Hart,
		Bus:      m.Bus,
		Sink:     m.Sink,
		Platform: plat,
	}
	m.Handler = handler.Handle

	msip := plat.ClintBase + mem.CLINT_MSIP
	mtime := plat.ClintBase + mem.CLINT_MTIME
	mtimecmp := plat.ClintBase + mem.CLINT_MTIMECMP

	m.Core.Entry = func() {
		m.Sink.PutStr("rvcore: entry\n")

		// Synchronous trap: environment call.
		m.Ecall()

		// Enable interrupt sources the way the runtime would.
		m.Hart.Mie |= hart.MIE_MSIE | hart.MIE_MTIE
		m.Hart.Mstatus |= hart.MSTATUS_MIE

		// Raise a software interrupt through the CLINT.
		_ = m.Bus.StoreWord(msip, 1)
		m.Run(4)

		// Program a near timer interrupt and let the clock reach it.
		now, _ := m.Bus.LoadDouble(mtime)
		_ = m.Bus.StoreDouble(mtimecmp, now+16)
		m.Run(steps)

		// Returning violates the entry contract, on purpose: the machine
		// parks in the terminal boot halt below.
	}

	m.Reset(seed)
	err = m.Boot()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("%v after %v cycles, %v dispatches", m.State(), m.Steps(), m.Dispatches)
}
