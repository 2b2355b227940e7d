package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand builds the command tree. Options adjust the shared context
// before any command runs.
func newRootCommand(opts ...func(*commandContext)) *cobra.Command {
	var configFlag string
	var verbose bool

	ctx := newCommandContext(&configFlag, &verbose)
	for _, opt := range opts {
		opt(ctx)
	}

	rootCmd := &cobra.Command{
		Use:           "clock-host",
		Short:         "Seven-segment clock host tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			return ctx.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.syncLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newSweepCommand())
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newSetTimeCommand(ctx))

	return rootCmd
}
