package core_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/core"
)

var _ = Describe("Core", func() {
	var (
		engine sim.Engine
		c      *core.Core
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		c = core.NewBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Core")
	})

	run := func() {
		Expect(engine.Run()).To(Succeed())
	}

	It("should settle to the same signals as Evaluate", func() {
		c.MapProgram(parse(sampleCircuit), nil)

		run()

		Expect(c.Err()).NotTo(HaveOccurred())
		Expect(c.Done()).To(BeTrue())
		Expect(c.Wires().Map()).To(Equal(sampleSignals))
		Expect(c.Cycles()).To(Equal(uint64(8)))
	})

	It("should spend a cycle on every deferral", func() {
		c.MapProgram(parse("b -> c\na -> b\n7 -> a\n"), nil)

		run()

		Expect(c.Done()).To(BeTrue())
		Expect(c.Wires().Map()).To(Equal(map[string]uint16{"a": 7, "b": 7, "c": 7}))
		Expect(c.Cycles()).To(Equal(uint64(6)))
	})

	It("should stop on a cycle", func() {
		c.MapProgram(parse("a -> b\nb -> a\n"), nil)

		run()

		Expect(c.Done()).To(BeFalse())
		Expect(c.Err()).To(MatchError(core.ErrUnresolvable))
		Expect(c.Cycles()).To(Equal(uint64(2)))
	})

	It("should honor preset wires", func() {
		c.MapProgram(parse(sampleCircuit), map[string]uint16{"y": 0})

		run()

		Expect(c.Wires().Lookup("d")).To(Equal(uint16(0)))
		Expect(c.Wires().Lookup("i")).To(Equal(uint16(65535)))
		Expect(c.Cycles()).To(Equal(uint64(7)))
	})

	It("should reset when a new program is mapped", func() {
		c.MapProgram(parse("a -> b\nb -> a\n"), nil)
		run()
		Expect(c.Err()).To(HaveOccurred())

		c.MapProgram(parse("1 -> a\n"), nil)
		run()

		Expect(c.Err()).NotTo(HaveOccurred())
		Expect(c.Wires().Map()).To(Equal(map[string]uint16{"a": 1}))
		Expect(c.Cycles()).To(Equal(uint64(1)))
	})

	It("should have nothing to do before a program is mapped", func() {
		Expect(c.Tick()).To(BeFalse())
		Expect(c.Done()).To(BeFalse())
		Expect(c.Wires().Len()).To(BeZero())
	})

	It("should invoke hooks as wires resolve", func() {
		hook := &wireRecorder{}
		c.AcceptHook(hook)
		c.MapProgram(parse("b -> c\na -> b\n7 -> a\n"), nil)

		run()

		Expect(hook.resolved).To(Equal([]string{"a=7@3", "b=7@5", "c=7@6"}))
		Expect(hook.deferred).To(Equal([]string{"c@1", "b@2", "c@4"}))
	})

	It("should report the stalling tick to hooks", func() {
		hook := &wireRecorder{}
		c.AcceptHook(hook)
		c.MapProgram(parse("a -> b\nb -> a\n"), nil)

		run()

		Expect(hook.resolved).To(BeEmpty())
		Expect(hook.deferred).To(Equal([]string{"b@1"}))
		Expect(hook.stalled).To(Equal([]string{"a@2"}))
	})

	It("should run the same board repeatedly", func() {
		insts := parse(sampleCircuit)

		for i := range 3 {
			preset := map[string]uint16{"x": uint16(i)}
			c.MapProgram(insts, preset)

			run()

			Expect(c.Err()).NotTo(HaveOccurred())
			Expect(c.Done()).To(BeTrue())
			Expect(c.Wires().Lookup("h")).To(Equal(^uint16(i)))
			Expect(c.Cycles()).To(Equal(uint64(7)))
		}
	})

	It("should refuse to build without an engine", func() {
		Expect(func() { core.NewBuilder().Build("Orphan") }).To(Panic())
	})
})

type wireRecorder struct {
	resolved []string
	deferred []string
	stalled  []string
}

func (r *wireRecorder) Func(ctx sim.HookCtx) {
	evt, ok := ctx.Item.(core.WireEvent)
	if !ok {
		return
	}

	switch ctx.Pos {
	case core.HookPosWireResolved:
		r.resolved = append(r.resolved,
			fmt.Sprintf("%s=%d@%d", evt.Wire, evt.Value, evt.Cycle))
	case core.HookPosInstDeferred:
		r.deferred = append(r.deferred,
			fmt.Sprintf("%s@%d", evt.Wire, evt.Cycle))
	case core.HookPosStalled:
		r.stalled = append(r.stalled,
			fmt.Sprintf("%s@%d", evt.Wire, evt.Cycle))
	}
}
