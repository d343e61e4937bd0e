package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitcalc/internal/units"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List unit categories and their units",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range units.Categories() {
				fmt.Printf("%s (%s, base: %s)\n", c.Name, c.Key, c.BaseName)
				for _, u := range c.Units {
					fmt.Printf("  %-8s %-20s %-8s %s\n", u.Key, u.Name, u.Abbreviation, u.System)
				}
			}
			return nil
		},
	}
}
