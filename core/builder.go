package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/program"
)

// Builder can create new cores.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	isa    *program.ISA
}

// NewBuilder returns a builder with a 1 GHz clock and the default gate set.
func NewBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithISA sets the gate set the core evaluates with.
func (b Builder) WithISA(isa *program.ISA) Builder {
	b.isa = isa
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		panic("core builder needs an engine")
	}

	c := &Core{
		emu: newInstEmulator(b.isa),
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
