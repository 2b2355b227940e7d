package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"segclock/core"
	"segclock/host/monitor"
	"segclock/host/serial"
)

func newSetTimeCommand(ctx *commandContext) *cobra.Command {
	var now bool
	var ticks int32
	var clock string

	cmd := &cobra.Command{
		Use:   "set-time",
		Short: "Set the firmware time-of-day register",
		Long: `Sends a set_time command to the clock firmware.

Use --now (the default) for the local wall time, --time for a given
24-hour time, or --ticks for a raw register value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			chosen := 0
			if now {
				chosen++
			}
			if clock != "" {
				chosen++
			}
			if cmd.Flags().Changed("ticks") {
				chosen++
			}
			if chosen > 1 {
				return errors.New("use only one of --now, --time, --ticks")
			}

			value := clockTicks(time.Now())
			switch {
			case clock != "":
				parsed, err := parseClock(clock)
				if err != nil {
					return err
				}
				value = parsed
			case cmd.Flags().Changed("ticks"):
				if ticks < 0 || ticks > core.MaxTimeOfDayTicks {
					return fmt.Errorf("ticks %d: %w", ticks, core.ErrOutOfRangeInput)
				}
				value = ticks
			}

			return ctx.withPort(func(port serial.Port) error {
				m := monitor.New(port, ctx.log())
				if err := m.SetTime(value); err != nil {
					return err
				}
				if err := port.Flush(); err != nil {
					return fmt.Errorf("flush: %w", err)
				}
				ctx.log().Info("time set", zap.Int32("ticks", value))
				fmt.Fprintf(cmd.OutOrStdout(), "set time-of-day register to %d\n", value)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&now, "now", false, "Use the current local time (default)")
	cmd.Flags().StringVar(&clock, "time", "", "24-hour wall time (HH:MM or HH:MM:SS)")
	cmd.Flags().Int32Var(&ticks, "ticks", 0, "Raw register value in 1/16 s since midnight")
	return cmd
}
