package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvcore/console"
	"github.com/ezrec/rvcore/hart"
	"github.com/ezrec/rvcore/mem"
	"github.com/ezrec/rvcore/platform"
)

// testPlatform shrinks the RAM window to 2 MiB so tests stay cheap.
func testPlatform() (p *platform.Platform) {
	p = platform.Default()
	p.RamEnd = p.RamBase + 0x200000
	p.StackTop = p.RamBase + 0x100000

	return
}

// testCore wires a core over a small RAM window with a captured console.
func testCore(t *testing.T) (c *Core, ram *mem.Ram, output *bytes.Buffer) {
	p := testPlatform()
	assert.NoError(t, p.Validate())

	bus := &mem.Bus{}
	ram = mem.NewRam(p.RamEnd - p.RamBase)
	bus.Map(p.RamBase, p.RamEnd-p.RamBase, ram)

	output = &bytes.Buffer{}
	bus.Map(p.Uart0Base, platform.UART0_SIZE, &mem.Uart{Output: output})

	sink := &console.Sink{Bus: bus, Addr: p.Uart0Base}

	c = New(p, hart.New(), bus, sink)
	return
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	c, _, _ := testCore(t)

	defines := map[string]string{}
	for key, value := range c.Defines() {
		defines[key] = value
	}

	assert.Equal("128", defines["FRAME_SIZE"])
}
