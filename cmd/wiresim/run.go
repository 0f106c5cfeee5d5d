package main

import (
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/api"
	"github.com/sarchlab/wiresim/core"
	"github.com/sarchlab/wiresim/program"
	"github.com/spf13/cobra"
)

type runOptions struct {
	wire      string
	all       bool
	overrides []string
	feedback  string
	clocked   bool
	strict    bool
	monitor   bool
}

// evaluator resolves a program with a set of preset wires.
type evaluator interface {
	evaluate(prog program.Program, preset map[string]uint16) (*core.SymbolTable, error)
	describe(cmd *cobra.Command)
}

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a circuit and print the signal on a wire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.wire, "wire", "w", "", "wire to report (default from config, \"a\")")
	f.BoolVar(&o.all, "all", false, "print every wire")
	f.StringArrayVarP(&o.overrides, "override", "o", nil, "preset a wire, as WIRE=VALUE (repeatable)")
	f.StringVar(&o.feedback, "feedback", "", "rerun with the reported signal forced onto this wire")
	f.BoolVar(&o.clocked, "clocked", false, "run on the clocked board")
	f.BoolVar(&o.strict, "strict", false, "fail on the first malformed line")
	f.BoolVar(&o.monitor, "monitor", false, "serve the akita monitor while running (implies --clocked)")

	return cmd
}

func (a *app) run(cmd *cobra.Command, path string, o *runOptions) error {
	cfg := a.cfg

	wire := cfg.Target
	if o.wire != "" {
		wire = o.wire
	}
	feedback := cfg.Feedback
	if o.feedback != "" {
		feedback = o.feedback
	}
	if feedback != "" && feedback == wire {
		return fmt.Errorf("feedback wire %q is the reported wire", feedback)
	}

	preset := maps.Clone(cfg.Overrides)
	if preset == nil {
		preset = make(map[string]uint16)
	}
	for _, kv := range o.overrides {
		w, v, err := parseOverride(kv)
		if err != nil {
			return err
		}
		preset[w] = v
	}

	prog, err := program.Load(path, cfg.Strict || o.strict)
	if err != nil {
		return err
	}

	slog.Info("Loaded circuit",
		"Path", path,
		"Instructions", len(prog.Instructions),
		"Skipped", len(prog.Skipped),
	)

	var ev evaluator = directEvaluator{}
	if cfg.Clocked || o.clocked || o.monitor {
		ev = newClockedEvaluator(cfg.Freq(), o.monitor)
	}

	out := cmd.OutOrStdout()

	table, err := ev.evaluate(prog, preset)
	if err != nil {
		return err
	}

	signal, err := table.Lookup(wire)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d\n", wire, signal)
	if o.all {
		core.WriteTable(out, table)
	}
	ev.describe(cmd)

	if feedback == "" {
		return nil
	}

	preset[feedback] = signal
	table, err = ev.evaluate(prog, preset)
	if err != nil {
		return fmt.Errorf("feedback run: %w", err)
	}

	second, err := table.Lookup(wire)
	if err != nil {
		return fmt.Errorf("feedback run: %w", err)
	}

	fmt.Fprintf(out, "%s (with %s=%d): %d\n", wire, feedback, signal, second)
	if o.all {
		core.WriteTable(out, table)
	}
	ev.describe(cmd)

	return nil
}

func parseOverride(kv string) (string, uint16, error) {
	w, v, ok := strings.Cut(kv, "=")
	w = strings.TrimSpace(w)
	if !ok || w == "" {
		return "", 0, fmt.Errorf("override %q: want WIRE=VALUE", kv)
	}

	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("override %q: value must be 0..65535", kv)
	}

	return w, uint16(n), nil
}

type directEvaluator struct{}

func (directEvaluator) evaluate(
	prog program.Program,
	preset map[string]uint16,
) (*core.SymbolTable, error) {
	table, err := core.Evaluate(prog.Instructions, core.WithOverrides(preset))
	if err == nil {
		core.LogTable(table)
	}
	return table, err
}

func (directEvaluator) describe(*cobra.Command) {}

type clockedEvaluator struct {
	driver   api.Driver
	deferred *deferralCounter
}

// deferralCounter counts the instructions the board pushed back.
type deferralCounter struct {
	n uint64
}

func (d *deferralCounter) Func(ctx sim.HookCtx) {
	if ctx.Pos == core.HookPosInstDeferred {
		d.n++
	}
}

func newClockedEvaluator(freq sim.Freq, serveMonitor bool) *clockedEvaluator {
	engine := sim.NewSerialEngine()

	driver, board := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(freq).
		Build("Circuit")

	counter := &deferralCounter{}
	board.AcceptHook(counter)

	if serveMonitor {
		monitor := monitoring.NewMonitor()
		monitor.RegisterEngine(engine)
		monitor.RegisterComponent(board)
		monitor.StartServer()
	}

	return &clockedEvaluator{driver: driver, deferred: counter}
}

func (e *clockedEvaluator) evaluate(
	prog program.Program,
	preset map[string]uint16,
) (*core.SymbolTable, error) {
	e.driver.ClearOverrides()
	for w, v := range preset {
		e.driver.Override(w, v)
	}
	e.driver.MapProgram(prog)
	e.deferred.n = 0

	table, err := e.driver.Run()
	if err == nil {
		core.LogTable(table)
	}
	return table, err
}

func (e *clockedEvaluator) describe(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "cycles: %d (%d deferred)\n",
		e.driver.Cycles(), e.deferred.n)
}
