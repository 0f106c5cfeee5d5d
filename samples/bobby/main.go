package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/api"
	"github.com/sarchlab/wiresim/core"
	"github.com/sarchlab/wiresim/program"
	"github.com/tebeka/atexit"
)

//go:embed bobby.wires
var bobbyCircuit string

func bobby(driver api.Driver) {
	driver.MapProgram(program.Parse(bobbyCircuit))

	wires, err := driver.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	core.WriteTable(os.Stdout, wires)
	fmt.Printf("settled in %d cycles\n", driver.Cycles())

	// Feed the signal of a back onto x and run again.
	a, _ := wires.Get("a")
	driver.Override("x", a)

	wires, err = driver.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	fmt.Println(wires.Map())
}

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	engine := sim.NewSerialEngine()

	driver, _ := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Bobby")

	bobby(driver)

	atexit.Exit(0)
}
