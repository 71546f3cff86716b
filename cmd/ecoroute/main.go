package main

import (
	"os"

	"ecoroute/cmd/ecoroute/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
