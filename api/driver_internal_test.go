package api

import (
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/core"
	"github.com/sarchlab/wiresim/program"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl  *gomock.Controller
		mockBoard *MockBoard
		driver    *driverImpl
		prog      program.Program
		wires     *core.SymbolTable
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockBoard = NewMockBoard(mockCtrl)

		driver = newDriver(sim.NewSerialEngine(), mockBoard)

		prog = program.Parse("123 -> x\nNOT x -> h\n")
		wires = core.NewSymbolTable()
		wires.Set("x", 123)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should map the program onto the board", func() {
		driver.MapProgram(prog)

		mockBoard.EXPECT().
			MapProgram(prog.Instructions, map[string]uint16{})
		mockBoard.EXPECT().Err().Return(nil)
		mockBoard.EXPECT().Done().Return(true)
		mockBoard.EXPECT().Wires().Return(wires)

		got, err := driver.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeIdenticalTo(wires))
	})

	It("should pass overrides as a copy", func() {
		driver.MapProgram(prog)
		driver.Override("x", 1)

		var preset map[string]uint16
		mockBoard.EXPECT().
			MapProgram(prog.Instructions, gomock.Any()).
			Do(func(_ any, p map[string]uint16) { preset = p })
		mockBoard.EXPECT().Err().Return(nil)
		mockBoard.EXPECT().Done().Return(true)
		mockBoard.EXPECT().Wires().Return(wires)

		_, err := driver.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(preset).To(Equal(map[string]uint16{"x": 1}))

		driver.ClearOverrides()
		Expect(preset).To(HaveKey("x"))
		Expect(driver.overrides).To(BeEmpty())
	})

	It("should return the board error", func() {
		stall := errors.New("stalled")

		mockBoard.EXPECT().MapProgram(gomock.Any(), gomock.Any())
		mockBoard.EXPECT().Err().Return(stall)
		mockBoard.EXPECT().Wires().Return(wires)

		got, err := driver.Run()

		Expect(err).To(MatchError(stall))
		Expect(got).To(BeIdenticalTo(wires))
	})

	It("should fail when the board has not settled", func() {
		mockBoard.EXPECT().MapProgram(gomock.Any(), gomock.Any())
		mockBoard.EXPECT().Err().Return(nil)
		mockBoard.EXPECT().Done().Return(false)
		mockBoard.EXPECT().Wires().Return(wires)

		_, err := driver.Run()

		Expect(err).To(MatchError(ContainSubstring("before settling")))
	})

	It("should report the board cycles", func() {
		mockBoard.EXPECT().Cycles().Return(uint64(12))

		Expect(driver.Cycles()).To(Equal(uint64(12)))
	})
})

var _ = Describe("DriverBuilder", func() {
	It("should run a circuit end to end", func() {
		engine := sim.NewSerialEngine()
		driver, board := DriverBuilder{}.
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Driver")

		Expect(board.Name()).To(Equal("Driver.Board"))

		driver.MapProgram(program.Parse("123 -> x\n456 -> y\nx AND y -> d\n"))

		wires, err := driver.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(wires.Lookup("d")).To(Equal(uint16(72)))
		Expect(driver.Cycles()).To(Equal(uint64(3)))

		driver.Override("x", 0)
		wires, err = driver.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(wires.Lookup("d")).To(Equal(uint16(0)))
		Expect(driver.Cycles()).To(Equal(uint64(2)))
	})

	It("should surface a cycle", func() {
		driver, _ := DriverBuilder{}.
			WithEngine(sim.NewSerialEngine()).
			Build("Loop")

		driver.MapProgram(program.Parse("a -> b\nb -> a\n"))

		_, err := driver.Run()
		Expect(err).To(MatchError(core.ErrUnresolvable))
	})
})
