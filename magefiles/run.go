//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Culls the bundled example scene once.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	_, err := executeCmd("go", withArgs("run", ".", "-scene", "engine/scene/testdata/scene.toml", "-log-level", "debug"), withStream())
	return err
}

// Culls the example scene and re-culls on every change until interrupted.
func (Run) Watch() error {
	mg.Deps(Build.Simd)
	_, err := executeCmd("bin/mars", withArgs("-scene", "engine/scene/testdata/scene.toml", "-watch"), withStream())
	return err
}
