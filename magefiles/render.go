//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Render mg.Namespace

// Scene renders one scene by name or path, e.g. mage render:scene cornell
func (Render) Scene(name string) error {
	mg.Deps(Build)
	if _, err := executeCmd(binary, withArgs("render", name), withStream()); err != nil {
		return err
	}
	return nil
}

// All renders every built-in scene and scene file at a small size.
func (Render) All() error {
	mg.Deps(Build)

	for _, name := range []string{"default", "spheregrid", "trianglemesh", "cornell", "models"} {
		out := fmt.Sprintf("output/preview/%s.png", name)
		if _, err := executeCmd(binary, withArgs("render", "--width", "160", "--height", "90", "--out", out, name)); err != nil {
			return err
		}
	}
	return nil
}
