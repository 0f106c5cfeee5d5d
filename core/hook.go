package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/instr"
)

// HookPosWireResolved marks when an instruction drives its destination wire.
var HookPosWireResolved = &sim.HookPos{Name: "Wire Resolved"}

// HookPosInstDeferred marks when an instruction is moved to the back of the
// queue because an operand is still pending.
var HookPosInstDeferred = &sim.HookPos{Name: "Inst Deferred"}

// HookPosStalled marks the deferral that completes a full pass without
// progress. It replaces HookPosInstDeferred on that tick; the core stops
// ticking afterwards and Err reports the pending instructions.
var HookPosStalled = &sim.HookPos{Name: "Circuit Stalled"}

// WireEvent is the item of the hooks invoked by a Core.
type WireEvent struct {
	Inst  instr.Instruction
	Wire  string
	Value uint16 // valid at HookPosWireResolved only
	Cycle uint64
}

func (c *Core) invokeWireHook(pos *sim.HookPos, inst instr.Instruction) {
	if c.NumHooks() == 0 {
		return
	}

	evt := WireEvent{
		Inst:  inst,
		Wire:  inst.Destination(),
		Cycle: c.cycles,
	}
	if pos == HookPosWireResolved {
		evt.Value, _ = c.work.table.Get(evt.Wire)
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    pos,
		Item:   evt,
	})
}
