package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelDebug - 4
)

// Trace logs at LevelTrace through the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// WriteTable renders the wires of a table, sorted by name, to w. When
// wires is non-empty only those wires are listed; unknown ones show "-".
func WriteTable(w io.Writer, t *SymbolTable, wires ...string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Wire", "Signal", "Hex"})

	if len(wires) == 0 {
		wires = t.Wires()
	}

	for _, wire := range wires {
		v, ok := t.Get(wire)
		if !ok {
			tw.AppendRow(table.Row{wire, "-", "-"})
			continue
		}
		tw.AppendRow(table.Row{wire, v, fmt.Sprintf("0x%04X", v)})
	}

	tw.AppendFooter(table.Row{"Total", t.Len(), ""})
	tw.Render()
}

// LogTable dumps the table at debug level.
func LogTable(t *SymbolTable) {
	slog.Debug("SymbolTable",
		"Wires", t.Len(),
		"Values", t.Map(),
	)
}
