package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"segclock/core"
	"segclock/host/render"
)

func newSweepCommand() *cobra.Command {
	var from, to, step int32

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate register values against decoded times and patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := render.Sweep(from, to, step)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.SweepTable(rows))
			return nil
		},
	}

	cmd.Flags().Int32Var(&from, "from", 0, "First register value")
	cmd.Flags().Int32Var(&to, "to", core.MaxTimeOfDayTicks, "Last register value (inclusive)")
	cmd.Flags().Int32Var(&step, "step", core.TicksPerSecond*core.SecondsPerHour, "Register increment")
	return cmd
}
