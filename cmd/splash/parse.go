package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-splash/splash"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse id ...",
		Short: "Print the blocks of splash identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range args {
				id, err := splash.Parse(s)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "id\t%s\n", id)
				fmt.Fprintf(tw, "format\t%c\n", id.Format)
				fmt.Fprintf(tw, "algorithm\t%c\n", id.Algorithm)
				fmt.Fprintf(tw, "histogram\t%s\t%v\n", id.Histogram, id.HistogramLevels())
				fmt.Fprintf(tw, "hash\t%s\n", id.Hash)
			}
			return tw.Flush()
		},
	}
}
