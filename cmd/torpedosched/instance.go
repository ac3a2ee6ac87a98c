package main

import (
	"fmt"
	"os"

	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/instanceio"
)

// readInstance opens and parses the instance file at path, wrapping
// instanceio's parse errors with the failing path for a usable CLI
// message.
func readInstance(path string) (*instance.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("torpedosched: open instance file %q: %w", path, err)
	}
	defer f.Close()

	inst, err := instanceio.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("torpedosched: parse %q: %w", path, err)
	}
	return inst, nil
}
