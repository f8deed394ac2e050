package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/liran-funaro/derivex/lexcfg"
	"github.com/liran-funaro/derivex/scan"
)

func newLexCmd() *cobra.Command {
	var dotPath string
	cmd := &cobra.Command{
		Use:   "lex <config-file>",
		Short: "Tokenize stdin using the rules declared in config-file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLex(cmd, args[0], dotPath)
		},
	}
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the compiled automaton in DOT format to this file")
	return cmd
}

func runLex(cmd *cobra.Command, configPath, dotPath string) error {
	cfg, err := lexcfg.Load(configPath)
	if err != nil {
		return err
	}
	a, skip, err := cfg.Build()
	if err != nil {
		return err
	}
	if dotPath != "" {
		if err := writeDot(a, dotPath); err != nil {
			return err
		}
	}

	skipSet := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipSet[name] = true
	}

	s := scan.New(a, bufio.NewReader(cmd.InOrStdin()))
	out := cmd.OutOrStdout()
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var noMatch *scan.NoMatchError
		if errors.As(err, &noMatch) {
			return fmt.Errorf("derivex: %w", err)
		}
		if err != nil {
			return err
		}
		if skipSet[tok.Rule] {
			continue
		}
		fmt.Fprintf(out, "%s %q\n", tok.Rule, tok.Text)
	}
}
