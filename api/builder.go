package api

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/core"
	"github.com/sarchlab/wiresim/program"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine sim.Engine
	freq   sim.Freq
	isa    *program.ISA
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the board.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithISA sets the gate set of the board.
func (b DriverBuilder) WithISA(isa *program.ISA) DriverBuilder {
	b.isa = isa
	return b
}

// Build creates a driver together with its board. The board is returned so
// that callers can register it with a monitor.
func (b DriverBuilder) Build(name string) (Driver, *core.Core) {
	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	board := core.NewBuilder().
		WithEngine(b.engine).
		WithFreq(freq).
		WithISA(b.isa).
		Build(name + ".Board")

	return newDriver(b.engine, board), board
}

func newDriver(engine sim.Engine, board Board) *driverImpl {
	return &driverImpl{
		engine:    engine,
		board:     board,
		overrides: make(map[string]uint16),
	}
}
