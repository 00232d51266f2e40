//go:build stave

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target when running `stave` with no arguments.
var Default = All

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"v": Vet,
	"c": Clean,
}

// All vets, tests and builds lesson-clean.
func All() error {
	st.Deps(Init)
	st.Deps(Vet, Test)
	st.Deps(Build)
	return nil
}

// Init resolves module dependencies and writes go.sum.
func Init() error {
	return sh.Run("go", "mod", "tidy")
}

// Build compiles the lesson-clean binary with version information.
func Build() error {
	st.Deps(Init)

	// Check if rebuild is needed
	rebuild, err := target.Glob("bin/lesson-clean", "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Println("lesson-clean is up to date")
		}
		return nil
	}

	ldflags := buildLdflags()
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/lesson-clean", "./cmd/lesson-clean")
}

// buildLdflags returns ldflags for version injection.
func buildLdflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	date := time.Now().Format(time.RFC3339)

	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version),
		strings.TrimSpace(commit),
		date,
	)
}

// Test runs all tests with the race detector.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	artifacts := []string{
		"bin/",
		"coverage.out",
		"coverage.html",
	}
	for _, a := range artifacts {
		if err := sh.Rm(a); err != nil {
			return fmt.Errorf("removing %s: %w", a, err)
		}
	}
	return nil
}

// Install builds and installs the binary to GOBIN.
func Install() error {
	st.Deps(Build)

	gocmd := st.GoCmd()
	bin, err := sh.Output(gocmd, "env", "GOBIN")
	if err != nil {
		return fmt.Errorf("determining GOBIN: %w", err)
	}
	if bin == "" {
		gopath, err := sh.Output(gocmd, "env", "GOPATH")
		if err != nil {
			return fmt.Errorf("determining GOPATH: %w", err)
		}
		bin = gopath + "/bin"
	}

	dst := bin + "/lesson-clean"
	if runtime.GOOS == "windows" {
		dst += ".exe"
	}
	if err := sh.Copy(dst, "bin/lesson-clean"); err != nil {
		return fmt.Errorf("installing lesson-clean: %w", err)
	}
	if st.Verbose() {
		fmt.Printf("Installed lesson-clean to %s\n", dst)
	}
	return nil
}

// Rules namespace for allowlist rule files.
type Rules st.Namespace

// Dump writes the built-in course as a rule file (RULES_OUT, default rules.yaml).
func (Rules) Dump() error {
	out := os.Getenv("RULES_OUT")
	if out == "" {
		out = "rules.yaml"
	}
	return sh.RunV("go", "run", "./scripts/dump-rules.go", "-o", out)
}

// Sample namespace for running the cleaner on local data.
type Sample st.Namespace

// Run cleans LESSONS (default units.json) with the freshly built binary,
// using RULES when set.
func (Sample) Run() error {
	st.Deps(Build)

	input := os.Getenv("LESSONS")
	if input == "" {
		input = "units.json"
	}
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return fmt.Errorf("lesson file not found: %s", input)
	}

	args := []string{input, "--stdout=false", "--stats"}
	if rules := os.Getenv("RULES"); rules != "" {
		args = append(args, "--rules", rules)
	}
	return sh.RunV("./bin/lesson-clean", args...)
}

// CI vets, tests and builds in order, then cleans the sample lessons
// when LESSONS is set.
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Vet, Test, Build)
	if os.Getenv("LESSONS") != "" {
		st.Deps(Sample.Run)
	}
	return nil
}

// Coverage writes coverage.html and prints per-function coverage.
func Coverage() error {
	st.Deps(Init)
	if err := sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	if err := sh.RunV("go", "tool", "cover", "-func=coverage.out"); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

