// Command ls-exosky is a terminal atlas for exoplanet systems.
package main

import (
	"os"

	"github.com/litescript/ls-exosky/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
