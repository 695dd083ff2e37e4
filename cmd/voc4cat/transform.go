package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LARAontologies/voc4cat-tool/transform"
)

func transformCmd(root *rootOptions) *cobra.Command {
	var (
		outputFile string
		sep        string
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Preprocess a vocabulary spreadsheet",
	}
	cmd.PersistentFlags().StringVarP(&outputFile, "outputfile", "o", "",
		"Output workbook path (default: overwrite the input)")

	out := func(in string) string {
		if outputFile != "" {
			return outputFile
		}
		return in
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add-iri FILE",
		Short: "Mint IRIs from preferred labels where none is present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform.AddIRIs(args[0], out(args[0]), root.sheet)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add-related FILE",
		Short: "Resolve preferred labels in children and members columns to IRIs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform.AddRelated(args[0], out(args[0]), root.sheet)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check FILE",
		Short: "Report concept IRIs used on more than one row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dupes, err := transform.CheckDuplicates(args[0], root.sheet)
			if err != nil {
				return err
			}
			if len(dupes) == 0 {
				fmt.Println("All checks passed successfully.")
				return nil
			}
			for _, d := range dupes {
				fmt.Printf("ERROR: concept IRI %q on row %d already used on row %d\n",
					d.IRI, d.Row, d.FirstSeen)
			}
			return fmt.Errorf("found %d duplicate concept IRIs", len(dupes))
		},
	})

	fromIndent := &cobra.Command{
		Use:   "hierarchy-from-indent FILE",
		Short: "Convert indented preferred labels to children-URI hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform.IndentToChildren(args[0], out(args[0]), root.sheet, sep)
		},
	}
	toIndent := &cobra.Command{
		Use:   "hierarchy-to-indent FILE",
		Short: "Convert children-URI hierarchy to indented preferred labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform.ChildrenToIndent(args[0], out(args[0]), root.sheet, sep)
		},
	}
	for _, c := range []*cobra.Command{fromIndent, toIndent} {
		c.Flags().StringVar(&sep, "indent-separator", " ",
			"Separator character(s) marking one indentation level")
		cmd.AddCommand(c)
	}

	return cmd
}
