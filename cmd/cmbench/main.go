/*
PURPOSE:
  Entry point for the cmbench application.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  - Must serve as the single binary entry point.
  - Exit code 1 on any error; experiment failures are fatal.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

IMPLEMENTATION RULES:
  - Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o cmbench ./cmd/cmbench
  ./cmbench run
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/cmbench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
