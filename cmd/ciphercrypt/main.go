package main

import (
	"os"

	"ciphercrypt/cmd/ciphercrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
