// Command lesson-clean rewrites typing-lesson JSON so every lesson string
// uses only the keys its unit has introduced.
package main

import (
	"fmt"
	"os"
)

// Set by the build via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
