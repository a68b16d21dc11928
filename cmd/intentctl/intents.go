package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newIntentsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "intents <query...>",
		Short: "Fuzzy search intent names and descriptions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := a.uc.SearchIntents(cmd.Context(), joinArgs(args), limit)
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matching intents")
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s\n", m.Pair, m.Description)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of matches")
	return cmd
}

func (a *app) newTaxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Dump the current taxonomy with learned keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), a.uc.Taxonomy(cmd.Context()))
		},
	}
}
