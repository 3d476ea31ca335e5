//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "bin/whitted"

var Default = Build

// Build compiles the whitted binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", binary, ".")
}

// Test runs every package's tests.
func Test() error {
	args := []string{"test", "./..."}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	return sh.RunV("go", args...)
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check vets and tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build and render outputs.
func Clean() error {
	for _, dir := range []string{"bin", "output"} {
		if err := sh.Rm(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}
	return nil
}
