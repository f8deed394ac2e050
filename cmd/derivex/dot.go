package main

import (
	"fmt"
	"os"

	"github.com/liran-funaro/derivex/automaton"
	"github.com/liran-funaro/derivex/internal/dot"
)

func writeDot(a *automaton.Automaton, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("derivex: %w", err)
	}
	defer f.Close()
	dot.Write(f, a, "derivex")
	return nil
}
