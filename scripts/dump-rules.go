//go:build ignore

// Write the built-in allowlist course as a rule file, as a starting point
// for custom courses.
// Usage: go run ./scripts/dump-rules.go [-o rules.yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jamesainslie/go-lessonclean/allowlist"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *out, err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	fmt.Fprintln(w, "# Built-in typing course. Each unit lists the characters it may use;")
	fmt.Fprintln(w, "# whitespace is always allowed. Units are capped by global.")

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(allowlist.RulesOf(allowlist.Builtin())); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding rules: %v\n", err)
		os.Exit(1)
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding rules: %v\n", err)
		os.Exit(1)
	}
}
