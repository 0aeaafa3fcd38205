package main

import (
	"os"

	"github.com/edenis00/fintrack-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
