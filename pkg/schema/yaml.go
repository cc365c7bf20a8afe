package schema

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML parses a schema authored as a YAML config file, the declarative
// alternative to Builder for populating a schema from a config file or
// DSL rather than source code. Both surfaces build the same immutable
// Schema tree.
func LoadYAML(r io.Reader) (*Schema, error) {
	var raw yamlSchema
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("schema: decode yaml: %w", err)
	}

	ns := raw.Namespaces
	if ns == nil {
		ns = map[string]string{}
	}

	patterns := make([]*Pattern, 0, len(raw.Patterns))
	for _, p := range raw.Patterns {
		scopes := make([]*Scope, 0, len(p.Scopes))
		for _, s := range p.Scopes {
			sc, err := buildYAMLScope(s, ns)
			if err != nil {
				return nil, err
			}
			scopes = append(scopes, sc)
		}
		patterns = append(patterns, &Pattern{
			Title:   p.Title,
			Context: NewXPathHandle(p.Context, ns),
			Scopes:  scopes,
		})
	}

	return &Schema{Title: raw.Title, Namespaces: cloneNS(ns), Patterns: patterns}, nil
}

type yamlSchema struct {
	Title      string            `yaml:"title"`
	Namespaces map[string]string `yaml:"namespaces"`
	Patterns   []yamlPattern     `yaml:"patterns"`
}

type yamlPattern struct {
	Title   string      `yaml:"title"`
	Context string      `yaml:"context"`
	Scopes  []yamlScope `yaml:"scopes"`
}

type yamlScope struct {
	Context string      `yaml:"context"`
	Scopes  []yamlScope `yaml:"scopes"`
	Rules   []yamlRule  `yaml:"rules"`
}

type yamlRule struct {
	Source     string          `yaml:"source"`
	Direction  string          `yaml:"direction"`
	Required   string          `yaml:"required"`
	Assertions []yamlAssertion `yaml:"assertions"`
}

type yamlAssertion struct {
	Child  string `yaml:"child"`
	Target string `yaml:"target"`
}

func buildYAMLScope(s yamlScope, ns map[string]string) (*Scope, error) {
	children := make([]*Scope, 0, len(s.Scopes))
	for _, cs := range s.Scopes {
		c, err := buildYAMLScope(cs, ns)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	rules := make([]*Rule, 0, len(s.Rules))
	for _, r := range s.Rules {
		direction, err := parseDirection(r.Direction)
		if err != nil {
			return nil, err
		}
		required, err := parseRequired(r.Required)
		if err != nil {
			return nil, err
		}
		assertions := make([]Assertion, 0, len(r.Assertions))
		for _, a := range r.Assertions {
			assertions = append(assertions, Assertion{
				Child:  NewXPathHandle(a.Child, ns),
				Target: NewXPathHandle(a.Target, ns),
			})
		}
		rules = append(rules, &Rule{
			Source:    NewXPathHandle(r.Source, ns),
			Targets:   assertions,
			Direction: direction,
			Required:  required,
		})
	}

	return &Scope{Context: NewXPathHandle(s.Context, ns), Scopes: children, Rules: rules}, nil
}

func parseDirection(s string) (Direction, error) {
	switch s {
	case "", "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	case "both":
		return Both, nil
	default:
		return Forward, fmt.Errorf("schema: unknown direction %q", s)
	}
}

func parseRequired(s string) (Required, error) {
	switch s {
	case "", "none":
		return RequiredNone, nil
	case "forward":
		return RequiredForward, nil
	case "backward":
		return RequiredBackward, nil
	case "both":
		return RequiredBoth, nil
	default:
		return RequiredNone, fmt.Errorf("schema: unknown required mode %q", s)
	}
}
