// Package policy compiles YAML-declared redaction rules into rendering
// strategies from the sensitive core. A policy file names each rule and
// describes what it hides:
//
//	version: "1"
//	rules:
//	  - name: card
//	    redactable: '\d'
//	  - name: ssn-delimited
//	    allowable: "-"
//	    precision: 4
//	  - name: drop-digits
//	    replacement: ""
//	    redactable: '\d'
//
// Rules are validated and compiled at load time; a loaded policy hands out
// pure, shareable redactors and renderers.
package policy

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/zoobzio/sensitive"
	"gopkg.in/yaml.v3"
)

// Policy is a validated, compiled set of redaction rules.
type Policy struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`

	compiled map[string]sensitive.Redactor
}

// Rule declares a single redaction strategy.
//
// Exactly one of Redactable (a regular expression for redactable
// segments) and Allowable (runes that are never redacted) may be set;
// with neither, every rune is redactable. Replacement defaults to "#";
// an explicit empty string deletes instead of masking. Precision, when
// set, pins the rule's default disclosure: it replaces a negative caller
// precision but never overrides an explicit one.
type Rule struct {
	Name        string  `yaml:"name"`
	Replacement *string `yaml:"replacement,omitempty"`
	Redactable  string  `yaml:"redactable,omitempty"`
	Allowable   string  `yaml:"allowable,omitempty"`
	Precision   *int    `yaml:"precision,omitempty"`
}

// Parse decodes and compiles a policy document. Unknown fields, duplicate
// rule names and uncompilable patterns are rejected here; error messages
// name the rule, never sample data.
func Parse(data []byte) (*Policy, error) {
	var p Policy
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode policy: %w", err)
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses a policy file.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	emitPolicyLoaded(path, len(p.Rules))
	return p, nil
}

// compile validates every rule and builds its redactor.
func (p *Policy) compile() error {
	p.compiled = make(map[string]sensitive.Redactor, len(p.Rules))
	for i := range p.Rules {
		rule := &p.Rules[i]
		if rule.Name == "" {
			return fmt.Errorf("%w: rule %d has no name", sensitive.ErrInvalidArgument, i)
		}
		if _, dup := p.compiled[rule.Name]; dup {
			return fmt.Errorf("%w: duplicate rule %q", sensitive.ErrInvalidArgument, rule.Name)
		}
		red, err := rule.build()
		if err != nil {
			return fmt.Errorf("rule %q: %w", rule.Name, err)
		}
		p.compiled[rule.Name] = red
	}
	return nil
}

// build compiles one rule into a redactor.
func (r *Rule) build() (sensitive.Redactor, error) {
	replacement := string(sensitive.DefaultReplacement)
	if r.Replacement != nil {
		replacement = *r.Replacement
	}

	var red sensitive.Redactor
	var err error
	switch {
	case r.Redactable != "" && r.Allowable != "":
		return nil, fmt.Errorf("%w: redactable and allowable are mutually exclusive", sensitive.ErrInvalidArgument)
	case r.Redactable != "":
		red, err = sensitive.Redact(replacement, r.Redactable)
		if err != nil {
			return nil, err
		}
	default:
		switch utf8.RuneCountInString(replacement) {
		case 0:
			red = sensitive.Truncate([]rune(r.Allowable)...)
		case 1:
			rep, _ := utf8.DecodeRuneInString(replacement)
			red = sensitive.MaskWith(rep, []rune(r.Allowable)...)
		default:
			return nil, fmt.Errorf("%w: replacement must be at most one rune unless redactable is set", sensitive.ErrInvalidArgument)
		}
	}

	if r.Precision != nil {
		pinned := *r.Precision
		inner := red
		red = func(precision int, text string) string {
			if precision < 0 {
				precision = pinned
			}
			return inner(precision, text)
		}
	}
	return red, nil
}

// Redactor returns the compiled redactor for a named rule.
func (p *Policy) Redactor(name string) (sensitive.Redactor, error) {
	red, ok := p.compiled[name]
	if !ok {
		return nil, fmt.Errorf("%w: no rule %q", sensitive.ErrMissingRedactor, name)
	}
	return red, nil
}

// Renderer returns a string renderer for a named rule.
func (p *Policy) Renderer(name string) (sensitive.Renderer[string], error) {
	red, err := p.Redactor(name)
	if err != nil {
		return nil, err
	}
	return sensitive.Simple(sensitive.Identity[string](), red), nil
}
