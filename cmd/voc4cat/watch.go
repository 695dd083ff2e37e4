package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/LARAontologies/voc4cat-tool/watch"
)

func watchCmd(root *rootOptions) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch INBOX_DIR",
		Short: "Watch an inbox directory and convert vocabulary files as they appear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			convOpts, err := convertOptions(root)
			if err != nil {
				return err
			}
			// batch semantics, output lands next to each input
			convOpts.OutputFile = ""

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := watch.Run(ctx, args[0], debounce, convOpts, nil); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond,
		"How long to wait for more changes before converting")
	return cmd
}
