package core

import (
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/instr"
)

// Core is a clocked circuit board. Each tick processes one pending
// instruction, so a run takes as many cycles as the worklist needs steps.
type Core struct {
	*sim.TickingComponent

	emu    instEmulator
	work   *worklist
	err    error
	cycles uint64
}

// MapProgram loads the instructions the core needs to resolve and schedules
// the first tick. Wires in preset are driven before the first tick and their
// instructions ignored. A core can be mapped again after a run.
func (c *Core) MapProgram(insts []instr.Instruction, preset map[string]uint16) {
	c.work = newWorklist(insts, preset, c.emu)
	c.err = nil
	c.cycles = 0

	Trace("MapProgram",
		"Core", c.Name(),
		"Instructions", len(insts),
		"Preset", len(preset),
	)

	// A previous run leaves its last tick at the current time; start on the
	// next cycle.
	c.TickLater()
}

// Tick processes the instruction at the front of the queue.
func (c *Core) Tick() (madeProgress bool) {
	if c.work == nil || c.work.Done() || c.err != nil {
		return false
	}

	c.cycles++

	inst := c.work.pending[0]
	resolved, err := c.work.Step()
	switch {
	case resolved:
		c.invokeWireHook(HookPosWireResolved, inst)
	case err != nil:
		c.invokeWireHook(HookPosStalled, inst)
	default:
		c.invokeWireHook(HookPosInstDeferred, inst)
	}

	if err != nil {
		c.err = err
		slog.Warn("Circuit stalled",
			"Core", c.Name(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Cycle", c.cycles,
			"Error", err,
		)
		return false
	}

	if c.work.Done() {
		Trace("Settled",
			"Core", c.Name(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Cycle", c.cycles,
			"Wires", c.work.table.Len(),
		)
		return false
	}

	return true
}

// Done reports whether every mapped instruction has been resolved.
func (c *Core) Done() bool {
	return c.work != nil && c.work.Done()
}

// Err returns the error that stopped the core, if any.
func (c *Core) Err() error {
	return c.err
}

// Wires returns the symbol table filled so far.
func (c *Core) Wires() *SymbolTable {
	if c.work == nil {
		return NewSymbolTable()
	}
	return c.work.table
}

// Cycles returns the number of ticks the current program has used.
func (c *Core) Cycles() uint64 {
	return c.cycles
}
