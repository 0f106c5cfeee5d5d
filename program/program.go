// Package program parses wire-logic source text into instructions.
package program

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/wiresim/instr"
)

// Program is the parsed form of a source text.
type Program struct {
	// Instructions in input order.
	Instructions []instr.Instruction
	// Skipped lists the lines that matched no production.
	Skipped []*LineError
}

// LineError reports a line that could not be parsed.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse parses every non-blank line of src independently. A line that
// matches no production is logged, recorded in Skipped and dropped; it never
// aborts the batch.
func Parse(src string) Program {
	prog, _ := parse(src, false)
	return prog
}

// ParseStrict parses like Parse but stops at the first malformed line.
func ParseStrict(src string) (Program, error) {
	return parse(src, true)
}

// Load reads and parses a program file.
func Load(path string, strict bool) (Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Program{}, fmt.Errorf("failed to read program: %w", err)
	}

	if strict {
		return ParseStrict(string(data))
	}
	return Parse(string(data)), nil
}

func parse(src string, strict bool) (Program, error) {
	var prog Program

	for idx, text := range strings.Split(src, "\n") {
		lineNo := idx + 1
		tokens := instr.Tokenize(text)
		if len(tokens) == 0 {
			continue
		}

		p := parser{tokens: tokens, line: lineNo}
		inst, err := p.parseInstruction()
		if err != nil {
			lerr := &LineError{Line: lineNo, Text: strings.TrimSpace(text), Err: err}
			if strict {
				return prog, lerr
			}

			slog.Warn("Skipping unparseable line",
				"Line", lineNo,
				"Text", lerr.Text,
				"Error", err,
			)
			prog.Skipped = append(prog.Skipped, lerr)
			continue
		}

		prog.Instructions = append(prog.Instructions, inst)
	}

	return prog, nil
}

// Wires returns every wire named by the program, as destination or source,
// in first-seen order.
func (p Program) Wires() []string {
	seen := make(map[string]bool)
	var wires []string
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			wires = append(wires, w)
		}
	}

	for _, inst := range p.Instructions {
		for _, src := range inst.Sources() {
			add(src)
		}
		add(inst.Destination())
	}

	return wires
}

// String renders the program in canonical source form.
func (p Program) String() string {
	var b strings.Builder
	for _, inst := range p.Instructions {
		b.WriteString(inst.String())
		b.WriteByte('\n')
	}
	return b.String()
}
