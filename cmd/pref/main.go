// Package main is the entry point for the pref application.
package main

import (
	"os"

	"golang.org/x/term" //nolint:depguard // Required for TTY detection
)

func main() {
	os.Exit(run(os.Args[1:], streams{
		in:          os.Stdin,
		out:         os.Stdout,
		err:         os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		altScreen:   term.IsTerminal(int(os.Stdout.Fd())),
	}))
}
