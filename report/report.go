// Package report prints errors and warnings to the terminal.
package report

import (
	"os"

	"github.com/pterm/pterm"
)

func Error(err error) {
	pterm.Error.Println(err)
}

// Warn prints err as a warning. The program carries on.
func Warn(err error) {
	pterm.Warning.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
