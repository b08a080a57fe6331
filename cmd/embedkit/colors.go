package main

import (
	"fmt"
	"strconv"

	"github.com/aleister1102/embedkit/internal/discord"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newColorsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the named embed colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Hex", "Decimal"})
			for _, c := range discord.Colors() {
				table.Append([]string{c.Name, fmt.Sprintf("#%06X", c.Value), strconv.Itoa(c.Value)})
			}
			table.Render()
			return nil
		},
	}
}
