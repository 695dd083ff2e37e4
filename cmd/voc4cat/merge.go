package main

import (
	"github.com/spf13/cobra"

	"github.com/LARAontologies/voc4cat-tool/checks"
)

func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge OUTBOX_DIR VOCAB_DIR",
		Short: "Merge published Turtle files from the outbox into the vocabulary directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checks.MergeOutbox(args[0], args[1])
		},
	}
}
