//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the demo binary with the generic kernel only.
func (Build) Generic() error {
	_, err := executeCmd("go", withArgs("build", "-tags", "purego", "-o", "bin/mars-generic", "."), withStream())
	return err
}

// Builds the demo binary with the SIMD kernel compiled in.
func (Build) Simd() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/mars", "."), withEnv("GOEXPERIMENT=simd"), withStream())
	return err
}
