// Package commands — офлайн-CLI конвертера: та же логика каталога и
// форматирования, что у сервиса, но без сети и без хранилищ.
package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "convert",
		Short: "Unit converter CLI (length, area, volume, angle)",
	}

	root.AddCommand(convertCmd(), categoriesCmd())
	return root.Execute()
}
