package core

import (
	"fmt"

	"github.com/sarchlab/wiresim/instr"
	"github.com/sarchlab/wiresim/program"
)

type instEmulator struct {
	isa *program.ISA
}

func newInstEmulator(isa *program.ISA) instEmulator {
	if isa == nil {
		isa = program.DefaultISA()
	}
	return instEmulator{isa: isa}
}

// CanRun reports whether every wire the instruction reads is resolved.
func (i instEmulator) CanRun(inst instr.Instruction, table *SymbolTable) bool {
	return table.HasAll(inst.Sources())
}

// RunInst computes the instruction output and drives its destination. It
// returns false, leaving the table untouched, when an operand is pending.
func (i instEmulator) RunInst(inst instr.Instruction, table *SymbolTable) bool {
	if !i.CanRun(inst, table) {
		return false
	}

	var value uint16

	switch in := inst.(type) {
	case instr.LoadConstant:
		value = in.Value
	case instr.LoadWire:
		value = i.readWire(in.Source, table)
	case instr.BinaryOp:
		lhs := i.readOperand(in.LHS, table)
		rhs := i.readOperand(in.RHS, table)
		value = i.isa.MustLookup(in.Op)(lhs, rhs)
	case instr.Shift:
		src := i.readWire(in.Source, table)
		value = i.isa.MustLookup(in.Op)(src, in.Amount)
	case instr.Not:
		src := i.readWire(in.Source, table)
		value = i.isa.MustLookup(instr.GateNot)(src, 0)
	default:
		panic(fmt.Sprintf("unknown instruction %T", inst))
	}

	if old, ok := table.Get(inst.Destination()); ok {
		// Redefinition is undefined behavior; the later write wins.
		Trace("Redefine",
			"Wire", inst.Destination(),
			"Old", old,
			"New", value,
		)
	}

	table.Set(inst.Destination(), value)

	return true
}

func (i instEmulator) readOperand(op instr.Operand, table *SymbolTable) uint16 {
	if op.IsConst {
		return op.Value
	}
	return i.readWire(op.Wire, table)
}

func (i instEmulator) readWire(wire string, table *SymbolTable) uint16 {
	v, ok := table.Get(wire)
	if !ok {
		panic(fmt.Sprintf("wire %s read before it was resolved", wire))
	}
	return v
}
