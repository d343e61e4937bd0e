package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"unitcalc/internal/domain"
	"unitcalc/internal/units"
)

func convertCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units of one category",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := domain.ParseCategory(category)
			if err != nil {
				return fmt.Errorf("%w: %s", err, category)
			}

			// Текстовый ввод фильтруем так же, как поле операнда конвертера:
			// цифры, один ведущий минус, одна точка.
			value := units.ParseOperand(units.SanitizeOperand(args[0]))
			if math.IsNaN(value) {
				return fmt.Errorf("invalid value: %q", args[0])
			}

			result := units.Convert(value, args[1], args[2], cat)
			fmt.Printf("%s %s = %s %s\n", args[0], args[1], units.FormatResult(result), args[2])
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "length", "unit category: length, area, volume, angle")
	return cmd
}
