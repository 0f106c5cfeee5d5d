package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/wiresim/instr"
)

var _ = Describe("InstEmulator", func() {
	var (
		ie    instEmulator
		table *SymbolTable
	)

	BeforeEach(func() {
		ie = newInstEmulator(nil)
		table = NewSymbolTable()
	})

	Context("when running a constant load", func() {
		It("should always run", func() {
			ok := ie.RunInst(instr.LoadConstant{Dest: "x", Value: 123}, table)

			Expect(ok).To(BeTrue())
			Expect(table.Lookup("x")).To(Equal(uint16(123)))
		})
	})

	Context("when running a gate", func() {
		inst := instr.BinaryOp{
			Op:   instr.GateOr,
			Dest: "e",
			LHS:  instr.WireOperand("x"),
			RHS:  instr.ConstOperand(4),
		}

		It("should wait for the operand", func() {
			ok := ie.RunInst(inst, table)

			Expect(ok).To(BeFalse())
			Expect(table.Len()).To(BeZero())
		})

		It("should drive the output once the operand resolves", func() {
			table.Set("x", 3)

			ok := ie.RunInst(inst, table)

			Expect(ok).To(BeTrue())
			Expect(table.Lookup("e")).To(Equal(uint16(7)))
		})
	})

	Context("when running a shift", func() {
		It("should shift by the constant amount", func() {
			table.Set("y", 456)

			ok := ie.RunInst(instr.Shift{
				Op: instr.GateRShift, Dest: "g", Source: "y", Amount: 2,
			}, table)

			Expect(ok).To(BeTrue())
			Expect(table.Lookup("g")).To(Equal(uint16(114)))
		})
	})

	Context("when running NOT", func() {
		It("should complement within 16 bits", func() {
			table.Set("z", 0)

			ok := ie.RunInst(instr.Not{Dest: "n", Source: "z"}, table)

			Expect(ok).To(BeTrue())
			Expect(table.Lookup("n")).To(Equal(uint16(65535)))
		})
	})
})

var _ = Describe("Worklist", func() {
	It("should rotate deferred instructions to the tail", func() {
		w := newWorklist([]instr.Instruction{
			instr.LoadWire{Dest: "b", Source: "a"},
			instr.LoadConstant{Dest: "a", Value: 5},
		}, nil, newInstEmulator(nil))

		resolved, err := w.Step()
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(BeFalse())
		Expect(w.pending[0].Destination()).To(Equal("a"))
		Expect(w.pending[1].Destination()).To(Equal("b"))
		Expect(w.stalled).To(Equal(1))

		resolved, err = w.Step()
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(BeTrue())
		Expect(w.stalled).To(BeZero())

		resolved, err = w.Step()
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(BeTrue())
		Expect(w.Done()).To(BeTrue())
	})

	It("should skip instructions that drive a preset wire", func() {
		w := newWorklist([]instr.Instruction{
			instr.LoadConstant{Dest: "a", Value: 5},
			instr.LoadWire{Dest: "b", Source: "a"},
		}, map[string]uint16{"a": 1}, newInstEmulator(nil))

		Expect(w.pending).To(HaveLen(1))
		Expect(w.table.Lookup("a")).To(Equal(uint16(1)))
	})

	It("should do nothing once empty", func() {
		w := newWorklist(nil, nil, newInstEmulator(nil))

		resolved, err := w.Step()

		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(BeFalse())
	})
})
