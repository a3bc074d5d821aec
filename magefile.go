//go:build mage

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/dkoosis/spectrum/internal/version"
	"github.com/dkoosis/spectrum/pkg/cellscan"
	"github.com/dkoosis/spectrum/pkg/ramp"
)

const binary = "bin/spectrum"

// Default target - build the binary
var Default = Build

// Build builds the spectrum binary with version metadata
func Build() error {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		v = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	if err := os.MkdirAll(filepath.Dir(binary), 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", version.LDFlags(v, commit, date), "-o", binary, "./cmd/spectrum")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(filepath.Dir(binary))
}

// Verify runs the built binary and checks its output decodes to the full,
// row-identical grid
func Verify() error {
	mg.Deps(Build)

	var stdout bytes.Buffer
	if _, err := sh.Exec(nil, &stdout, os.Stderr, "./"+binary); err != nil {
		return fmt.Errorf("running %s: %w", binary, err)
	}

	grid, err := cellscan.Decode(&stdout)
	if err != nil {
		return fmt.Errorf("decoding output: %w", err)
	}
	if err := grid.Validate(ramp.Width, ramp.Height); err != nil {
		return fmt.Errorf("validating output: %w", err)
	}
	if !grid.RowsIdentical() {
		return fmt.Errorf("validating output: rows differ")
	}
	fmt.Printf("verified %d×%d grid\n", ramp.Width, ramp.Height)
	return nil
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() {
	mg.SerialDeps(Lint.Format, Lint.Vet)
}

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", "cmd", "internal", "pkg")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}
