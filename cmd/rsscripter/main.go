package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rsscripter/rsscripter/internal/cli"
	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(rsscripter.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(rsscripter.ExitCodeForError(err))
	}
}
