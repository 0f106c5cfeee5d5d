package program_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/wiresim/instr"
	"github.com/sarchlab/wiresim/program"
)

var _ = Describe("Parser", func() {
	DescribeTable("should parse every production",
		func(line string, want instr.Instruction) {
			inst, err := program.ParseLine(line)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst).To(Equal(want))
		},
		Entry("constant load", "123 -> x",
			instr.LoadConstant{Dest: "x", Value: 123}),
		Entry("wire load", "lx -> a",
			instr.LoadWire{Dest: "a", Source: "lx"}),
		Entry("wire AND wire", "x AND y -> d",
			instr.BinaryOp{
				Op:   instr.GateAnd,
				Dest: "d",
				LHS:  instr.WireOperand("x"),
				RHS:  instr.WireOperand("y"),
			}),
		Entry("wire OR wire", "x OR y -> e",
			instr.BinaryOp{
				Op:   instr.GateOr,
				Dest: "e",
				LHS:  instr.WireOperand("x"),
				RHS:  instr.WireOperand("y"),
			}),
		Entry("wire AND constant", "x AND 7 -> d",
			instr.BinaryOp{
				Op:   instr.GateAnd,
				Dest: "d",
				LHS:  instr.WireOperand("x"),
				RHS:  instr.ConstOperand(7),
			}),
		Entry("constant AND wire", "1 AND cx -> cy",
			instr.BinaryOp{
				Op:   instr.GateAnd,
				Dest: "cy",
				LHS:  instr.ConstOperand(1),
				RHS:  instr.WireOperand("cx"),
			}),
		Entry("constant OR wire", "1 OR cx -> cy",
			instr.BinaryOp{
				Op:   instr.GateOr,
				Dest: "cy",
				LHS:  instr.ConstOperand(1),
				RHS:  instr.WireOperand("cx"),
			}),
		Entry("left shift", "x LSHIFT 2 -> f",
			instr.Shift{Op: instr.GateLShift, Dest: "f", Source: "x", Amount: 2}),
		Entry("right shift", "y RSHIFT 2 -> g",
			instr.Shift{Op: instr.GateRShift, Dest: "g", Source: "y", Amount: 2}),
		Entry("complement", "NOT x -> h",
			instr.Not{Dest: "h", Source: "x"}),
		Entry("largest constant", "65535 -> m",
			instr.LoadConstant{Dest: "m", Value: 65535}),
	)

	DescribeTable("should reject malformed lines",
		func(line string) {
			inst, err := program.ParseLine(line)

			Expect(inst).To(BeNil())
			Expect(err).To(MatchError(program.ErrSyntax))
		},
		Entry("empty", ""),
		Entry("assignment first", "-> x"),
		Entry("gate first", "AND x -> y"),
		Entry("missing destination", "123 ->"),
		Entry("constant destination", "123 -> 456"),
		Entry("missing assignment", "x AND y d"),
		Entry("NOT of a constant", "NOT 5 -> h"),
		Entry("shift by a wire", "x LSHIFT y -> f"),
		Entry("constant shifted", "1 LSHIFT 2 -> f"),
		Entry("constant AND constant", "1 AND 2 -> f"),
		Entry("double gate", "x AND OR y -> d"),
		Entry("trailing token", "123 -> x y"),
		Entry("trailing assignment", "NOT x -> h -> i"),
		Entry("oversized constant", "65536 -> x"),
		Entry("oversized shift", "x LSHIFT 70000 -> f"),
		Entry("oversized operand", "x AND 99999 -> f"),
		Entry("lowercase gate", "x and y -> d"),
	)

	It("should describe the offending token", func() {
		_, err := program.ParseLine("x AND -> d")

		Expect(err).To(MatchError(ContainSubstring("unexpected Assign")))
	})

	It("should parse pre-tokenized input", func() {
		tokens := instr.Tokenize("NOT x -> h")

		inst, err := program.ParseTokens(tokens)

		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Destination()).To(Equal("h"))
		Expect(inst.Sources()).To(ConsistOf("x"))
	})
})
