// Package verify provides static checks and a report for wire-logic
// programs.
//
// It has two complementary stages:
//
// 1. Static Lint (lint.go): structural checks on the parsed program
//   - SYNTAX: lines the lenient parser skipped
//   - REDEFINED: a wire driven by more than one instruction
//   - UNDRIVEN: a wire that is read but never driven nor preset
//   - CYCLE: wires that depend on themselves through one or more gates
//
// 2. Evaluation (report.go): runs core.Evaluate on the same program so that a
// report shows both the static findings and the resolved signals.
//
// # Usage Example
//
//	prog := program.Parse(src)
//	report := verify.GenerateReport(prog, nil)
//	report.WriteReport(os.Stdout)
//	if !report.OK() {
//	    os.Exit(1)
//	}
package verify

import "fmt"

// IssueType categorizes lint issues
type IssueType string

const (
	IssueSyntax    IssueType = "SYNTAX"    // Line skipped by the parser
	IssueRedefined IssueType = "REDEFINED" // Wire driven more than once
	IssueUndriven  IssueType = "UNDRIVEN"  // Wire read but never driven
	IssueCycle     IssueType = "CYCLE"     // Wire depends on itself
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	Wires   []string // Wires involved, sorted
	Lines   []int    // Source lines involved, ascending; 0 when unknown
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Type, i.Message)
}

// wireBinding binds wire names to dense integer IDs for graph algorithms.
type wireBinding struct {
	nameToID map[string]int
	idToName []string
}

func newWireBinding() *wireBinding {
	return &wireBinding{
		nameToID: make(map[string]int),
	}
}

// id returns the ID of a wire, registering it on first use.
func (b *wireBinding) id(name string) int {
	if id, ok := b.nameToID[name]; ok {
		return id
	}

	id := len(b.idToName)
	b.nameToID[name] = id
	b.idToName = append(b.idToName, name)

	return id
}

func (b *wireBinding) name(id int) string {
	return b.idToName[id]
}

func (b *wireBinding) size() int {
	return len(b.idToName)
}
