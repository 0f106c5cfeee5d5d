package instr

import "strconv"

// Operand is a gate input: either a named wire or a 16-bit constant.
type Operand struct {
	Wire  string
	Value uint16
	// IsConst is set when the operand is a literal constant.
	IsConst bool
}

// WireOperand returns an operand that reads a wire.
func WireOperand(name string) Operand {
	return Operand{Wire: name}
}

// ConstOperand returns an operand that holds a literal value.
func ConstOperand(v uint16) Operand {
	return Operand{Value: v, IsConst: true}
}

func (o Operand) String() string {
	if o.IsConst {
		return strconv.FormatUint(uint64(o.Value), 10)
	}
	return o.Wire
}
