// Command asciitable prints rows read from a YAML, JSON, CSV, or TSV file as
// a bordered text table.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bjaus/asciitable/internal/logger"
)

func main() {
	exitCode := 0
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
