package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// errReported marks failures whose message already went to stderr in full;
// main still exits nonzero but must not print again.
var errReported = errors.New("error already reported")

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
