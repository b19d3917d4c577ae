//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

func runExample(name string) error {
	fmt.Printf("Run %s example...\n", name)
	_, err := executeCmd("go", withArgs("run", "./examples/"+name), withStream())
	return err
}

// Runs the animated triangle example.
func (Run) Triangle() error {
	return runExample("triangle")
}

// Runs the indexed quad example.
func (Run) Quad() error {
	return runExample("quad")
}

// Runs the textured triangle example.
func (Run) Texture() error {
	return runExample("texture")
}
