package cli

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	stepColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
)

// setupConsole disables colored output when requested. fatih/color already
// honors NO_COLOR and non-terminal stdout on its own.
func setupConsole(noAnsi bool) {
	if noAnsi {
		color.NoColor = true
	}
}

// printStep prints an in-progress setup line.
func printStep(msg string) {
	fmt.Printf("  %s %s\n", stepColor.Sprint("⏳"), msg)
}

// printSuccess prints a completed setup line.
func printSuccess(msg string) {
	fmt.Printf("  %s %s\n", successColor.Sprint("✓"), msg)
}
