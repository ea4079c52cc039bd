package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssvariant/internal/scan"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <classes>...",
		Short: "Merge class lists so the last conflicting class wins",
		Example: `  cssvariant merge "px-2 py-1 bg-brand" "p-3 bg-surface"
  cssvariant merge "hover:bg-brand" "hover:bg-surface"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := loadClassifier(scan.NewWalker("."))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cl.CN(args))
			return nil
		},
	}
}
