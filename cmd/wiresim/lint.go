package main

import (
	"errors"
	"maps"

	"github.com/sarchlab/wiresim/program"
	"github.com/sarchlab/wiresim/verify"
	"github.com/spf13/cobra"
)

var errVerifyFailed = errors.New("verification failed")

func newLintCmd(a *app) *cobra.Command {
	var reportFile string

	cmd := &cobra.Command{
		Use:   "lint FILE",
		Short: "Check a circuit for syntax errors, redefinitions, undriven wires and cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := program.Load(args[0], false)
			if err != nil {
				return err
			}

			report := verify.GenerateReport(prog, maps.Clone(a.cfg.Overrides))
			report.WriteReport(cmd.OutOrStdout())

			if reportFile != "" {
				if err := report.SaveReportToFile(reportFile); err != nil {
					return err
				}
			}

			if !report.OK() {
				return errVerifyFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportFile, "report", "", "also save the report to a file")

	return cmd
}
