package core

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownWire is returned when a wire has no signal in a table.
var ErrUnknownWire = errors.New("unknown wire")

// SymbolTable maps wire names to their resolved 16-bit signals. A table is
// owned by the run that fills it.
type SymbolTable struct {
	values map[string]uint16
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{values: make(map[string]uint16)}
}

// Set drives a wire with a signal.
func (t *SymbolTable) Set(wire string, value uint16) {
	t.values[wire] = value
}

// Get returns the signal of a wire and whether it is known.
func (t *SymbolTable) Get(wire string) (uint16, bool) {
	v, ok := t.values[wire]
	return v, ok
}

// Lookup returns the signal of a wire, or an error wrapping ErrUnknownWire.
func (t *SymbolTable) Lookup(wire string) (uint16, error) {
	v, ok := t.values[wire]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownWire, wire)
	}
	return v, nil
}

// Has reports whether the wire has a signal.
func (t *SymbolTable) Has(wire string) bool {
	_, ok := t.values[wire]
	return ok
}

// HasAll reports whether every wire has a signal.
func (t *SymbolTable) HasAll(wires []string) bool {
	for _, w := range wires {
		if !t.Has(w) {
			return false
		}
	}
	return true
}

// Len returns the number of resolved wires.
func (t *SymbolTable) Len() int {
	return len(t.values)
}

// Wires returns the resolved wire names in sorted order.
func (t *SymbolTable) Wires() []string {
	return slices.Sorted(maps.Keys(t.values))
}

// Map returns a copy of the table contents.
func (t *SymbolTable) Map() map[string]uint16 {
	return maps.Clone(t.values)
}
