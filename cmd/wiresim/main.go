// Command wiresim tokenizes, parses, checks and evaluates wire-logic
// circuits.
package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
