package main

import (
	"os"

	"github.com/custodia-labs/docket-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}
