package main

import (
	"os"

	"github.com/goliatone/go-numeral/cmd/ruwords/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
