package main

import (
	"os"

	"github.com/windfall/pitch_service/cmd/pitchctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
