package main

import (
	"os"

	"github.com/glbridge-dev/glbridge/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
