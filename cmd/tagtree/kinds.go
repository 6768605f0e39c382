package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagtree/pkg/tags"
)

func kindsCmd() *cobra.Command {
	var voidOnly bool

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the registered element kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tVOID\tREQUIRED")
			for _, k := range tags.Kinds() {
				if voidOnly && !k.Void {
					continue
				}
				required := strings.Join(k.Required, ",")
				if required == "" {
					required = "-"
				}
				fmt.Fprintf(w, "%s\t%t\t%s\n", k.Tag, k.Void, required)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&voidOnly, "void", false, "List only void elements")

	return cmd
}
