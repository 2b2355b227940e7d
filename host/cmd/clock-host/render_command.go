package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"segclock/core"
	"segclock/host/config"
	"segclock/host/render"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var ticks int32
	var clock string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Decode a time-of-day register value and show its display pattern",
		Long: `Runs one clock update against in-memory registers and prints the result.

With no flags the current local time is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("ticks") && clock != "" {
				return errors.New("--ticks and --time are mutually exclusive")
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
				value = ticks
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return renderTicks(cmd.OutOrStdout(), value, cfg.Display.Style)
		},
	}

	cmd.Flags().Int32Var(&ticks, "ticks", 0, "Raw register value in 1/16 s since midnight")
	cmd.Flags().StringVar(&clock, "time", "", "24-hour wall time (HH:MM or HH:MM:SS)")
	return cmd
}

// renderTicks runs the clock update for ticks and prints the display
func renderTicks(out io.Writer, ticks int32, style string) error {
	regs := core.NewRegisters(ticks)
	if err := core.UpdateClockDisplay(regs); err != nil {
		return fmt.Errorf("ticks %d: %w", ticks, err)
	}

	var tod core.TimeOfDay
	if err := core.DecodeTimeOfDay(ticks, &tod); err != nil {
		return fmt.Errorf("ticks %d: %w", ticks, err)
	}
	pattern := regs.Display()

	fmt.Fprintf(out, "ticks=%d day_seconds=%d time=%d:%02d:%02d %s pattern=%s\n",
		ticks, tod.DaySeconds, tod.Hours, tod.Minutes, tod.Seconds, tod.Meridiem, formatPattern(pattern))
	writePattern(out, pattern, style)
	return nil
}

// writePattern prints pattern in the configured display style
func writePattern(out io.Writer, pattern core.DisplayPattern, style string) {
	if style == config.StyleCompact {
		fmt.Fprintln(out, render.Digits(pattern))
		return
	}
	for _, line := range render.ASCII(pattern) {
		fmt.Fprintln(out, line)
	}
}
