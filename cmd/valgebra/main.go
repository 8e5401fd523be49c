// Command valgebra converts, blends and addresses typed values from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/valgebra/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
