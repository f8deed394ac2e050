package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liran-funaro/derivex/automaton"
	"github.com/liran-funaro/derivex/expr"
	"github.com/liran-funaro/derivex/rx"
	"github.com/liran-funaro/derivex/scan"
)

func newMatchCmd() *cobra.Command {
	var dotPath string
	cmd := &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Report the longest prefix of input matched by pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, args[0], args[1], dotPath)
		},
	}
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the compiled automaton in DOT format to this file")
	return cmd
}

func runMatch(cmd *cobra.Command, pattern, input, dotPath string) error {
	e, err := rx.Parse(pattern)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "bad regexp")
		return nil
	}

	v := expr.NewVector([]expr.Rule{{Name: "match", Expr: e}})
	a, err := automaton.Construct(v)
	if err != nil {
		return fmt.Errorf("bad regexp: %w", err)
	}
	if dotPath != "" {
		if err := writeDot(a, dotPath); err != nil {
			return err
		}
	}

	s := scan.New(a, strings.NewReader(input))
	tok, err := s.Next()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "NOPE")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok.Text)
	return nil
}
