// Package api defines the driver API for running circuits on a clocked board.
package api

import (
	"fmt"
	"maps"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/core"
	"github.com/sarchlab/wiresim/instr"
	"github.com/sarchlab/wiresim/program"
)

// Board is the part of a core that the driver controls.
type Board interface {
	// MapProgram loads a program and schedules the board to start ticking.
	MapProgram(insts []instr.Instruction, preset map[string]uint16)
	Done() bool
	Err() error
	Wires() *core.SymbolTable
	Cycles() uint64
}

// Driver provides the interface to run a circuit.
type Driver interface {
	// MapProgram sets the program the next Run evaluates.
	MapProgram(prog program.Program)

	// Override presets a wire for the next Run. The instruction that would
	// drive the wire is ignored.
	Override(wire string, value uint16)

	// ClearOverrides drops every preset.
	ClearOverrides()

	// Run maps the program onto the board and runs the engine until the
	// board settles or stalls.
	Run() (*core.SymbolTable, error)

	// Cycles returns the number of board cycles used by the last Run.
	Cycles() uint64
}

type driverImpl struct {
	engine sim.Engine
	board  Board

	prog      program.Program
	overrides map[string]uint16
}

func (d *driverImpl) MapProgram(prog program.Program) {
	d.prog = prog
}

func (d *driverImpl) Override(wire string, value uint16) {
	d.overrides[wire] = value
}

func (d *driverImpl) ClearOverrides() {
	clear(d.overrides)
}

func (d *driverImpl) Run() (*core.SymbolTable, error) {
	d.board.MapProgram(d.prog.Instructions, maps.Clone(d.overrides))

	if err := d.engine.Run(); err != nil {
		return d.board.Wires(), fmt.Errorf("engine failed: %w", err)
	}

	if err := d.board.Err(); err != nil {
		return d.board.Wires(), err
	}

	if !d.board.Done() {
		return d.board.Wires(), fmt.Errorf("board stopped before settling")
	}

	return d.board.Wires(), nil
}

func (d *driverImpl) Cycles() uint64 {
	return d.board.Cycles()
}
