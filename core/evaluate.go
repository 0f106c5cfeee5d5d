package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sarchlab/wiresim/instr"
	"github.com/sarchlab/wiresim/program"
)

// ErrUnresolvable is wrapped when a full pass over the pending instructions
// resolves nothing, which happens for cyclic or undriven wires.
var ErrUnresolvable = errors.New("unresolvable dependency")

// UnresolvedError lists the instructions left pending when evaluation
// stalled.
type UnresolvedError struct {
	Pending []instr.Instruction
	// Missing are the wires read by pending instructions that have no
	// signal, sorted.
	Missing []string
}

func (e *UnresolvedError) Error() string {
	dests := make([]string, 0, len(e.Pending))
	for _, inst := range e.Pending {
		dests = append(dests, inst.Destination())
	}
	return fmt.Sprintf("%v: %d instructions pending (%s), waiting on %s",
		ErrUnresolvable, len(e.Pending),
		strings.Join(dests, ", "), strings.Join(e.Missing, ", "))
}

func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolvable
}

// Option configures an evaluation.
type Option func(*options)

type options struct {
	overrides map[string]uint16
	isa       *program.ISA
}

// WithOverrides presets wires before evaluation. Instructions that drive a
// preset wire are ignored.
func WithOverrides(overrides map[string]uint16) Option {
	return func(o *options) {
		o.overrides = overrides
	}
}

// WithISA evaluates gates with a custom gate set.
func WithISA(isa *program.ISA) Option {
	return func(o *options) {
		o.isa = isa
	}
}

// Evaluate resolves every instruction in dependency order and returns the
// resulting table. On ErrUnresolvable the partially filled table is returned
// along with the error.
func Evaluate(insts []instr.Instruction, opts ...Option) (*SymbolTable, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	w := newWorklist(insts, o.overrides, newInstEmulator(o.isa))
	for !w.Done() {
		if _, err := w.Step(); err != nil {
			return w.table, err
		}
	}

	return w.table, nil
}

// worklist is the pending queue of one evaluation. Deferred instructions go
// to the tail; stalled counts deferrals since the last resolution.
type worklist struct {
	emu     instEmulator
	table   *SymbolTable
	pending []instr.Instruction
	stalled int
}

func newWorklist(
	insts []instr.Instruction,
	overrides map[string]uint16,
	emu instEmulator,
) *worklist {
	w := &worklist{
		emu:     emu,
		table:   NewSymbolTable(),
		pending: make([]instr.Instruction, 0, len(insts)),
	}

	for wire, v := range overrides {
		w.table.Set(wire, v)
	}

	for _, inst := range insts {
		if _, ok := overrides[inst.Destination()]; ok {
			Trace("Override", "Wire", inst.Destination(), "Inst", inst.String())
			continue
		}
		w.pending = append(w.pending, inst)
	}

	return w
}

// Done reports whether the queue is empty.
func (w *worklist) Done() bool {
	return len(w.pending) == 0
}

// Step processes the instruction at the front of the queue. It reports
// whether the instruction was resolved.
func (w *worklist) Step() (bool, error) {
	if w.Done() {
		return false, nil
	}

	inst := w.pending[0]
	w.pending = w.pending[1:]

	Trace("Process", "Inst", inst.String(), "Pending", len(w.pending))

	if w.emu.RunInst(inst, w.table) {
		w.stalled = 0
		v, _ := w.table.Get(inst.Destination())
		Trace("Resolve", "Wire", inst.Destination(), "Value", v)
		return true, nil
	}

	w.pending = append(w.pending, inst)
	w.stalled++

	if w.stalled >= len(w.pending) {
		return false, w.unresolved()
	}

	return false, nil
}

func (w *worklist) unresolved() error {
	missing := make(map[string]bool)
	for _, inst := range w.pending {
		for _, src := range inst.Sources() {
			if !w.table.Has(src) {
				missing[src] = true
			}
		}
	}

	names := make([]string, 0, len(missing))
	for m := range missing {
		names = append(names, m)
	}
	slices.Sort(names)

	return &UnresolvedError{
		Pending: slices.Clone(w.pending),
		Missing: names,
	}
}
