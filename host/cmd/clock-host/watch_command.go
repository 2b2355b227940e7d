package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"segclock/core"
	"segclock/host/config"
	"segclock/host/monitor"
	"segclock/host/serial"
	"segclock/protocol"
)

const clearScreen = "\033[H\033[2J"

func newWatchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print every clock state the firmware reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			redraw := cfg.Display.ClearScreen && cfg.Display.Style == config.StyleASCII && isTerminal(out)

			return ctx.withPort(func(port serial.Port) error {
				m := monitor.New(port, ctx.log())
				err := m.Run(runCtx, func(state protocol.ClockState) {
					writeState(out, state, cfg.Display.Style, redraw)
				})
				if dropped := m.Dropped(); dropped > 0 {
					ctx.log().Warn("frames dropped", zap.Uint32("count", dropped))
				}
				return err
			})
		},
	}
	return cmd
}

// writeState prints one reported clock state
func writeState(out io.Writer, state protocol.ClockState, style string, redraw bool) {
	if redraw {
		fmt.Fprint(out, clearScreen)
	}
	pattern := core.DisplayPattern(state.Pattern)
	if state.Status != 0 {
		fmt.Fprintf(out, "ticks=%d update failed (status %d), display holds %s\n",
			state.Ticks, state.Status, formatPattern(pattern))
		return
	}
	if style == config.StyleCompact {
		fmt.Fprintf(out, "ticks=%d %s\n", state.Ticks, formatPattern(pattern))
	} else {
		fmt.Fprintf(out, "ticks=%d pattern=%s\n", state.Ticks, formatPattern(pattern))
	}
	writePattern(out, pattern, style)
}
