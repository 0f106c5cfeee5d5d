package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/wiresim/instr"
	"github.com/sarchlab/wiresim/program"
	"github.com/spf13/cobra"
)

func newTokensCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the tokens of every line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read program: %w", err)
			}

			out := cmd.OutOrStdout()
			for idx, line := range strings.Split(string(data), "\n") {
				var parts []string
				for tok := range instr.Tokens(line) {
					parts = append(parts, tok.String())
				}
				if len(parts) == 0 {
					continue
				}
				fmt.Fprintf(out, "%d: %s\n", idx+1, strings.Join(parts, " "))
			}

			return nil
		},
	}
}

func newParseCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print every parsed instruction in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := program.Load(args[0], a.cfg.Strict || strict)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, inst := range prog.Instructions {
				fmt.Fprintf(out, "%d: %-18T %s\n", inst.SourceLine(), inst, inst)
			}
			for _, skipped := range prog.Skipped {
				fmt.Fprintf(out, "%d: skipped: %v\n", skipped.Line, skipped.Err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first malformed line")

	return cmd
}
