// Package instr defines the tokens and instructions of the wire-logic
// assembly language.
//
// A program is a list of assignment statements, one per line:
//
//	123 -> x
//	x AND y -> d
//	p LSHIFT 2 -> q
//	NOT e -> f
//
// Each statement drives exactly one destination wire.
package instr

import "fmt"

// Instruction is one assignment statement. The set of implementations is
// closed: LoadConstant, LoadWire, BinaryOp, Shift and Not.
type Instruction interface {
	// Destination returns the wire written by the instruction.
	Destination() string
	// Sources returns the wires read by the instruction. Constant operands
	// are not listed.
	Sources() []string
	// SourceLine returns the 1-based line the instruction was parsed from,
	// or 0.
	SourceLine() int
	String() string

	isInstruction()
}

// Gate names a binary or shift operation.
type Gate string

const (
	GateAnd    Gate = "AND"
	GateOr     Gate = "OR"
	GateLShift Gate = "LSHIFT"
	GateRShift Gate = "RSHIFT"
	GateNot    Gate = "NOT"
)

// LoadConstant drives Dest with a literal value.
type LoadConstant struct {
	Dest  string
	Value uint16
	Line  int
}

func (i LoadConstant) Destination() string { return i.Dest }
func (i LoadConstant) Sources() []string   { return nil }
func (i LoadConstant) SourceLine() int     { return i.Line }
func (i LoadConstant) String() string      { return fmt.Sprintf("%d -> %s", i.Value, i.Dest) }
func (LoadConstant) isInstruction()        {}

// LoadWire copies the signal of Source onto Dest.
type LoadWire struct {
	Dest   string
	Source string
	Line   int
}

func (i LoadWire) Destination() string { return i.Dest }
func (i LoadWire) Sources() []string   { return []string{i.Source} }
func (i LoadWire) SourceLine() int     { return i.Line }
func (i LoadWire) String() string      { return fmt.Sprintf("%s -> %s", i.Source, i.Dest) }
func (LoadWire) isInstruction()        {}

// BinaryOp combines two operands with AND or OR.
type BinaryOp struct {
	Op   Gate
	Dest string
	LHS  Operand
	RHS  Operand
	Line int
}

func (i BinaryOp) Destination() string { return i.Dest }

func (i BinaryOp) Sources() []string {
	var srcs []string
	if !i.LHS.IsConst {
		srcs = append(srcs, i.LHS.Wire)
	}
	if !i.RHS.IsConst {
		srcs = append(srcs, i.RHS.Wire)
	}
	return srcs
}

func (i BinaryOp) SourceLine() int { return i.Line }

func (i BinaryOp) String() string {
	return fmt.Sprintf("%s %s %s -> %s", i.LHS, i.Op, i.RHS, i.Dest)
}

func (BinaryOp) isInstruction() {}

// Shift moves the bits of Source by a constant amount.
type Shift struct {
	Op     Gate
	Dest   string
	Source string
	Amount uint16
	Line   int
}

func (i Shift) Destination() string { return i.Dest }
func (i Shift) Sources() []string   { return []string{i.Source} }
func (i Shift) SourceLine() int     { return i.Line }

func (i Shift) String() string {
	return fmt.Sprintf("%s %s %d -> %s", i.Source, i.Op, i.Amount, i.Dest)
}

func (Shift) isInstruction() {}

// Not drives Dest with the complement of Source.
type Not struct {
	Dest   string
	Source string
	Line   int
}

func (i Not) Destination() string { return i.Dest }
func (i Not) Sources() []string   { return []string{i.Source} }
func (i Not) SourceLine() int     { return i.Line }
func (i Not) String() string      { return fmt.Sprintf("NOT %s -> %s", i.Source, i.Dest) }
func (Not) isInstruction()        {}
