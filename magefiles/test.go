//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the test suite against the generic kernel.
func (Test) Generic() error {
	_, err := executeCmd("go", withArgs("test", "-tags", "purego", "./..."), withStream())
	return err
}

// Runs the test suite with the SIMD kernel compiled in.
func (Test) Simd() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withEnv("GOEXPERIMENT=simd"), withStream())
	return err
}

// Runs both suites.
func (Test) All() {
	mg.SerialDeps(Test.Generic, Test.Simd)
}
