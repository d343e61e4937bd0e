package main

import (
	"os"

	"unitcalc/cmd/convert/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
