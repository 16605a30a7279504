package main

import (
	"os"

	"github.com/collate-dev/collate/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
