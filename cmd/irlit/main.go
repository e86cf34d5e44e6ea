// Command irlit translates IR tokens into C++ literals for generated
// single-layer tests.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/irlit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// ExitErrors were already reported by the command that returned them.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
