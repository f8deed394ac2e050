// Package lexcfg loads a lexer description from a YAML configuration
// file: an ordered list of named rules, each a pattern that may
// interpolate previously declared rules by name, and compiles it into a
// scan.Scanner-ready automaton.Automaton.
package lexcfg

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/fasttemplate"
	"gopkg.in/yaml.v3"

	"github.com/liran-funaro/derivex/automaton"
	"github.com/liran-funaro/derivex/expr"
	"github.com/liran-funaro/derivex/rx"
)

const (
	openTag = "{"
	closeTag = "}"
)

// ErrUnknownRuleReference is returned when a pattern interpolates a rule
// name that has not been declared earlier in the file.
var ErrUnknownRuleReference = errors.New("lexcfg: unknown rule reference")

// ErrDuplicateRuleName is returned when two rules share a name: rule
// interpolation requires each name to resolve unambiguously.
var ErrDuplicateRuleName = errors.New("lexcfg: duplicate rule name")

// RuleConfig is one YAML-level rule entry.
type RuleConfig struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	// Skip marks a rule whose matches are discarded by the scanner's
	// caller rather than surfaced as tokens (e.g. whitespace, comments).
	Skip bool `yaml:"skip"`
}

// Config is the parsed, not-yet-compiled form of a lexer description.
type Config struct {
	Rules []RuleConfig `yaml:"rules"`
}

// Load reads and parses a lexer description from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexcfg: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("lexcfg: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Expand interpolates {name} references in every rule's pattern against
// the already expanded (pre-parse) pattern text of rules declared earlier in the
// file, and returns the fully expanded pattern text per rule, in
// declaration order. This lets a config define primitive rules like
// `digit` and build on them, e.g. `number: "{digit}+"`.
func (c *Config) Expand() ([]string, error) {
	raw := make(map[string]string, len(c.Rules))
	out := make([]string, len(c.Rules))
	for i, r := range c.Rules {
		if _, dup := raw[r.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRuleName, r.Name)
		}

		var unresolved error
		expanded := fasttemplate.ExecuteFuncString(r.Pattern, openTag, closeTag, func(w io.Writer, tag string) (int, error) {
			v, ok := raw[tag]
			if !ok {
				unresolved = fmt.Errorf("%w: %s", ErrUnknownRuleReference, tag)
				return 0, nil
			}
			return w.Write([]byte(v))
		})
		if unresolved != nil {
			return nil, unresolved
		}

		out[i] = expanded
		raw[r.Name] = expanded
	}
	return out, nil
}

// Build parses and expands every rule and constructs the automaton for
// the resulting expr.Vector. The returned []string is the set of
// rule names marked Skip, in declaration order, for callers that want
// to filter them out of a scan.
func (c *Config) Build() (*automaton.Automaton, []string, error) {
	patterns, err := c.Expand()
	if err != nil {
		return nil, nil, err
	}

	rules := make([]expr.Rule, len(c.Rules))
	var skip []string
	for i, rc := range c.Rules {
		e, err := rx.Parse(patterns[i])
		if err != nil {
			return nil, nil, fmt.Errorf("lexcfg: rule %s: %w", rc.Name, err)
		}
		rules[i] = expr.Rule{Name: rc.Name, Expr: e}
		if rc.Skip {
			skip = append(skip, rc.Name)
		}
	}

	a, err := automaton.Construct(expr.NewVector(rules))
	if err != nil {
		return nil, nil, fmt.Errorf("lexcfg: %w", err)
	}
	return a, skip, nil
}
