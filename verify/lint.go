package verify

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sarchlab/wiresim/program"
)

// RunLint performs static checks on a parsed program. Wires in preset count
// as driven, and the instructions that would drive them are left out of the
// cycle check, matching what core.Evaluate does with overrides.
// Returns a list of issues found, or empty list if no issues.
func RunLint(prog program.Program, preset map[string]uint16) []Issue {
	var issues []Issue

	// SYNTAX: lines the lenient parser dropped
	for _, skipped := range prog.Skipped {
		issues = append(issues, Issue{
			Type:    IssueSyntax,
			Lines:   []int{skipped.Line},
			Message: fmt.Sprintf("line %d skipped: %v", skipped.Line, skipped.Err),
		})
	}

	issues = append(issues, checkRedefinitions(prog)...)
	issues = append(issues, checkUndriven(prog, preset)...)
	issues = append(issues, checkCycles(prog, preset)...)

	return issues
}

func checkRedefinitions(prog program.Program) []Issue {
	var issues []Issue

	drivers := make(map[string][]int)
	var order []string
	for _, inst := range prog.Instructions {
		dest := inst.Destination()
		if _, seen := drivers[dest]; !seen {
			order = append(order, dest)
		}
		drivers[dest] = append(drivers[dest], inst.SourceLine())
	}

	for _, wire := range order {
		lines := drivers[wire]
		if len(lines) < 2 {
			continue
		}
		issues = append(issues, Issue{
			Type:    IssueRedefined,
			Wires:   []string{wire},
			Lines:   lines,
			Message: fmt.Sprintf("wire %s is driven %d times (lines %s)", wire, len(lines), joinInts(lines)),
		})
	}

	return issues
}

func checkUndriven(prog program.Program, preset map[string]uint16) []Issue {
	var issues []Issue

	driven := make(map[string]bool)
	for _, inst := range prog.Instructions {
		driven[inst.Destination()] = true
	}
	for wire := range preset {
		driven[wire] = true
	}

	readers := make(map[string][]int)
	var order []string
	for _, inst := range prog.Instructions {
		for _, src := range inst.Sources() {
			if driven[src] {
				continue
			}
			if _, seen := readers[src]; !seen {
				order = append(order, src)
			}
			readers[src] = append(readers[src], inst.SourceLine())
		}
	}

	for _, wire := range order {
		issues = append(issues, Issue{
			Type:    IssueUndriven,
			Wires:   []string{wire},
			Lines:   readers[wire],
			Message: fmt.Sprintf("wire %s is read (lines %s) but never driven", wire, joinInts(readers[wire])),
		})
	}

	return issues
}

// checkCycles finds strongly connected groups in the wire dependency graph
// with Tarjan's algorithm. An edge runs from a destination to each wire it
// reads.
func checkCycles(prog program.Program, preset map[string]uint16) []Issue {
	binding := newWireBinding()
	var deps [][2]int
	lines := make(map[int][]int)

	for _, inst := range prog.Instructions {
		if _, ok := preset[inst.Destination()]; ok {
			continue
		}

		dest := binding.id(inst.Destination())
		for _, src := range inst.Sources() {
			deps = append(deps, [2]int{dest, binding.id(src)})
		}
		lines[dest] = append(lines[dest], inst.SourceLine())
	}

	edges := make([][]int, binding.size())
	for _, d := range deps {
		edges[d[0]] = append(edges[d[0]], d[1])
	}

	t := &tarjan{
		edges:   edges,
		index:   make([]int, binding.size()),
		low:     make([]int, binding.size()),
		onStack: make([]bool, binding.size()),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for v := 0; v < binding.size(); v++ {
		if t.index[v] < 0 {
			t.strongConnect(v)
		}
	}

	var issues []Issue
	for _, comp := range t.components {
		if len(comp) == 1 && !slices.Contains(edges[comp[0]], comp[0]) {
			continue
		}

		wires := make([]string, 0, len(comp))
		var compLines []int
		for _, id := range comp {
			wires = append(wires, binding.name(id))
			compLines = append(compLines, lines[id]...)
		}
		slices.Sort(wires)
		slices.Sort(compLines)

		issues = append(issues, Issue{
			Type:    IssueCycle,
			Wires:   wires,
			Lines:   compLines,
			Message: fmt.Sprintf("wires %s depend on each other", strings.Join(wires, ", ")),
		})
	}

	slices.SortFunc(issues, func(a, b Issue) int {
		return strings.Compare(a.Wires[0], b.Wires[0])
	})

	return issues
}

type tarjan struct {
	edges      [][]int
	index      []int
	low        []int
	onStack    []bool
	stack      []int
	next       int
	components [][]int
}

func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.next
	t.low[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.edges[v] {
		if t.index[w] < 0 {
			t.strongConnect(w)
			t.low[v] = min(t.low[v], t.low[w])
		} else if t.onStack[w] {
			t.low[v] = min(t.low[v], t.index[w])
		}
	}

	if t.low[v] != t.index[v] {
		return
	}

	var comp []int
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.components = append(t.components, comp)
}

func joinInts(vals []int) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ", ")
}
