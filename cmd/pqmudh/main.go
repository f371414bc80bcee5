package main

import (
	"os"

	"pqmudh/cmd/pqmudh/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
