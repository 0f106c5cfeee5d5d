package verify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/wiresim/core"
	"github.com/sarchlab/wiresim/program"
)

// Report represents a complete verification report
type Report struct {
	InstructionCount int
	SkippedLines     int
	Issues           []Issue
	Wires            *core.SymbolTable
	EvalErr          error
}

// GenerateReport runs lint and evaluation on the program, returns a report
func GenerateReport(prog program.Program, preset map[string]uint16) *Report {
	report := &Report{
		InstructionCount: len(prog.Instructions),
		SkippedLines:     len(prog.Skipped),
	}

	report.Issues = RunLint(prog, preset)
	report.Wires, report.EvalErr = core.Evaluate(prog.Instructions, core.WithOverrides(preset))

	return report
}

// OK reports whether lint found nothing and evaluation settled.
func (r *Report) OK() bool {
	return len(r.Issues) == 0 && r.EvalErr == nil
}

// CountByType returns the number of issues of the given type.
func (r *Report) CountByType(t IssueType) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Type == t {
			n++
		}
	}
	return n
}

// WriteReport writes a formatted report to a writer
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "CIRCUIT VERIFICATION REPORT")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Instructions: %d parsed, %d lines skipped\n",
		r.InstructionCount, r.SkippedLines)

	// STAGE 1: LINT
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
	} else {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"#", "Type", "Lines", "Message"})
		for i, issue := range r.Issues {
			tw.AppendRow(table.Row{i + 1, issue.Type, joinInts(issue.Lines), issue.Message})
		}
		tw.Render()
	}

	// STAGE 2: EVALUATION
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: EVALUATION")
	fmt.Fprintln(w, separator)

	var unresolved *core.UnresolvedError
	switch {
	case r.EvalErr == nil:
		fmt.Fprintf(w, "Settled with %d wires\n", r.Wires.Len())
	case errors.As(r.EvalErr, &unresolved):
		fmt.Fprintf(w, "Stalled with %d wires resolved, %d instructions pending\n",
			r.Wires.Len(), len(unresolved.Pending))
		fmt.Fprintf(w, "Waiting on: %s\n", strings.Join(unresolved.Missing, ", "))
	default:
		fmt.Fprintf(w, "Evaluation error: %v\n", r.EvalErr)
	}

	if r.Wires != nil && r.Wires.Len() > 0 {
		core.WriteTable(w, r.Wires)
	}

	// SUMMARY
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Lint: %d issues (%d SYNTAX, %d REDEFINED, %d UNDRIVEN, %d CYCLE)\n",
		len(r.Issues),
		r.CountByType(IssueSyntax),
		r.CountByType(IssueRedefined),
		r.CountByType(IssueUndriven),
		r.CountByType(IssueCycle),
	)

	status := "SETTLED"
	if r.EvalErr != nil {
		status = "FAILED"
	}
	fmt.Fprintf(w, "Evaluation: %s\n", status)
}

// SaveReportToFile saves the report to a file
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
