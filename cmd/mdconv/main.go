package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/mdconv/internal/cli"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mdconv.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(mdconv.ExitCodeForError(err))
	}
}
