//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo   = "go"
	binName = "bin/patterns"
)

// Default target when mage is run without arguments.
var Default = Build

// Build compiles the patterns CLI into bin/.
func Build() error {
	return sh.RunV(binGo, "build", "-o", binName, "./cmd/cli")
}

// Test runs every package test with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Demo builds the CLI and runs every demonstration.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(binName, "run")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm("bin")
}
