package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/monocle-dev/trackr/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
