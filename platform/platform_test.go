package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	p := Default()
	assert.NoError(p.Validate())

	assert.Equal(RAM_BASE, p.RamBase)
	assert.Equal(RAM_END, p.RamEnd)
	assert.Equal(STACK_TOP, p.StackTop)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		mutate func(p *Platform)
		want   error
	}){
		{"ok", func(p *Platform) {}, nil},
		{"inverted_window", func(p *Platform) { p.RamEnd = p.RamBase }, ErrRamWindow},
		{"stack_below", func(p *Platform) { p.StackTop = p.RamBase }, ErrStackWindow},
		{"stack_above", func(p *Platform) { p.StackTop = p.RamEnd + 16 }, ErrStackWindow},
		{"stack_at_end", func(p *Platform) { p.StackTop = p.RamEnd }, nil},
		{"stack_unaligned", func(p *Platform) { p.StackTop += 8 }, ErrStackAlign},
		{"vector_unaligned", func(p *Platform) { p.TrapVectorBase += 2 }, ErrVectorAlign},
		{"gp_outside", func(p *Platform) { p.GlobalPointerBase = 0x1000 }, ErrRamWindow},
		{"uart_in_ram", func(p *Platform) { p.Uart0Base = p.RamBase + 0x1000 }, ErrDeviceOverlap},
		{"clint_in_ram", func(p *Platform) { p.ClintBase = p.RamEnd - 0x100 }, ErrDeviceOverlap},
	}

	for _, entry := range table {
		p := Default()
		entry.mutate(p)
		err := p.Validate()
		if entry.want == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.want, entry.name)
		}
	}
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	p := Default()

	defines := map[string]string{}
	for key, value := range p.Defines() {
		defines[key] = value
	}

	assert.Equal("0x80000000", defines["RAM_BASE"])
	assert.Equal("0x88000000", defines["RAM_END"])
	assert.Equal("0x80100000", defines["STACK_TOP"])
	assert.Contains(defines, "UART0_BASE")
	assert.Contains(defines, "CLINT_BASE")
	assert.Contains(defines, "VECTOR_BASE")
	assert.Contains(defines, "GP_BASE")
}
