package main

import (
	"github.com/spf13/cobra"

	"github.com/LARAontologies/voc4cat-tool/checks"
)

func checkCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run workflow checks on a vocabulary repository",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "inbox DIR",
		Short: "Check the inbox against the single-vocabulary option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			return checks.CheckInboxFileCount(cfg, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "names VOCAB_DIR INBOX_DIR",
		Short: "Check vocabulary file names against the configuration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			return checks.ValidateVocabularyNames(cfg, args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "idrange VOCAB",
		Short: "Check that the vocabulary has an allocated ID range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			return checks.ValidateConfigHasIDRange(cfg, args[0])
		},
	})

	var actor string
	idsCmd := &cobra.Command{
		Use:   "ids VOCAB_TTL",
		Short: "Check concept IDs against the allocated ID ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			return checks.CheckIDsInAllocatedRanges(cfg, args[0], actor)
		},
	}
	idsCmd.Flags().StringVar(&actor, "actor", "",
		"restrict valid ranges to the ones allocated to this contributor (GitHub login, ORCID, or ROR ID)")
	cmd.AddCommand(idsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "removed PREV_TTL NEW_TTL",
		Short: "Check that no published IRIs were removed between releases",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			return checks.CheckRemovedIRIs(cfg, args[0], args[1])
		},
	})

	return cmd
}
