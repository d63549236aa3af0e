// Package main is the entry point for the rental-pricing CLI.
package main

import (
	"os"

	"rental-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
