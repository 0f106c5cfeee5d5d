package program

import (
	"fmt"
	"sort"

	"github.com/sarchlab/wiresim/instr"
)

// Behavior computes a gate output. Unary gates ignore the second argument.
type Behavior func(a, b uint16) uint16

// ISA is a named set of gate behaviors.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from gate name to the behavior of the gate.
	nameToBehavior map[instr.Gate]Behavior
}

// NewISA creates an empty gate set.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:        name,
		nameToBehavior: make(map[instr.Gate]Behavior),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Register adds or replaces a gate behavior.
func (isa *ISA) Register(gate instr.Gate, behavior Behavior) {
	isa.nameToBehavior[gate] = behavior
}

// Lookup returns the behavior registered for a gate.
func (isa *ISA) Lookup(gate instr.Gate) (Behavior, bool) {
	b, ok := isa.nameToBehavior[gate]
	return b, ok
}

// MustLookup returns the behavior registered for a gate and panics if there
// is none.
func (isa *ISA) MustLookup(gate instr.Gate) Behavior {
	b, ok := isa.nameToBehavior[gate]
	if !ok {
		panic(fmt.Sprintf("gate %s is not part of ISA %q", gate, isa.isaName))
	}
	return b
}

// Gates lists the registered gate names in sorted order.
func (isa *ISA) Gates() []instr.Gate {
	gates := make([]instr.Gate, 0, len(isa.nameToBehavior))
	for g := range isa.nameToBehavior {
		gates = append(gates, g)
	}
	sort.Slice(gates, func(i, j int) bool { return gates[i] < gates[j] })
	return gates
}

// DefaultISA returns a fresh copy of the built-in 16-bit gate set.
func DefaultISA() *ISA {
	isa := NewISA("wire logic")
	isa.Register(instr.GateAnd, gateAND)
	isa.Register(instr.GateOr, gateOR)
	isa.Register(instr.GateLShift, gateLSHIFT)
	isa.Register(instr.GateRShift, gateRSHIFT)
	isa.Register(instr.GateNot, gateNOT)
	return isa
}
