package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssvariant/internal/scan"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "classify <class>...",
		Short:   "Show how classes are keyed for conflict resolution",
		Example: `  cssvariant classify px-4 hover:!bg-brand/80 "[mask-type:luminance]"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := loadClassifier(scan.NewWalker("."))
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "CLASS\tMODIFIERS\tGROUP\tIMPORTANT\tKEY")
			for _, tok := range cl.Parse(args) {
				mods := strings.Join(tok.Modifiers(), ":")
				if mods == "" {
					mods = "-"
				}
				important := "no"
				if tok.Important() {
					important = "yes"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
					tok.Raw(), mods, tok.Group(), important, tok.Key())
			}
			return writer.Flush()
		},
	}
}
