package program

// Gate behaviors of the built-in ISA. uint16 arithmetic keeps every result
// inside the 16-bit signal domain; a shift by 16 or more yields 0.

func gateAND(a, b uint16) uint16 {
	return a & b
}

func gateOR(a, b uint16) uint16 {
	return a | b
}

func gateLSHIFT(a, amount uint16) uint16 {
	return a << amount
}

func gateRSHIFT(a, amount uint16) uint16 {
	return a >> amount
}

func gateNOT(a, _ uint16) uint16 {
	return ^a
}
