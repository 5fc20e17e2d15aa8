package policy

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/sensitive"
)

const testPolicy = `
version: "1"
rules:
  - name: digits
    redactable: '\d'
  - name: delimited
    allowable: "-"
  - name: drop
    replacement: ""
  - name: pinned
    allowable: "-"
    precision: 4
  - name: stars
    replacement: "*"
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(testPolicy))
	require.NoError(t, err)
	assert.Equal(t, "1", p.Version)
	assert.Len(t, p.Rules, 5)
}

func TestCompiledRedactors(t *testing.T) {
	p, err := Parse([]byte(testPolicy))
	require.NoError(t, err)

	tests := []struct {
		rule      string
		precision int
		input     string
		expected  string
	}{
		{"digits", 4, "123-45-6789", "###-##-6789"},
		{"delimited", 4, "123-45-6789", "###-##-6789"},
		{"drop", 4, "123456789", "6789"},
		{"stars", 4, "123456789", "*****6789"},
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			red, err := p.Redactor(tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, red(tt.precision, tt.input))
		})
	}
}

func TestPinnedPrecision(t *testing.T) {
	p, err := Parse([]byte(testPolicy))
	require.NoError(t, err)

	red, err := p.Redactor("pinned")
	require.NoError(t, err)

	// The pinned precision replaces the default disclosure...
	assert.Equal(t, "###-##-6789", red(-1, "123-45-6789"))
	// ...but an explicit precision still wins.
	assert.Equal(t, "###-##-####", red(0, "123-45-6789"))
	assert.Equal(t, "123-45-6789", red(9, "123-45-6789"))
}

func TestRenderer(t *testing.T) {
	p, err := Parse([]byte(testPolicy))
	require.NoError(t, err)

	renderer, err := p.Renderer("digits")
	require.NoError(t, err)

	v := sensitive.New("123-45-6789", sensitive.WithRenderer(renderer))
	assert.Equal(t, "###-##-6789", fmt.Sprintf("%.4s", v))
}

func TestUnknownRule(t *testing.T) {
	p, err := Parse([]byte(testPolicy))
	require.NoError(t, err)

	_, err = p.Redactor("nope")
	assert.ErrorIs(t, err, sensitive.ErrMissingRedactor)

	_, err = p.Renderer("nope")
	assert.ErrorIs(t, err, sensitive.ErrMissingRedactor)
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unnamed rule", `
rules:
  - redactable: '\d'
`},
		{"duplicate names", `
rules:
  - name: a
  - name: a
`},
		{"unknown field", `
rules:
  - name: a
    replacment: "#"
`},
		{"bad regex", `
rules:
  - name: a
    redactable: '[unterminated'
`},
		{"redactable and allowable", `
rules:
  - name: a
    redactable: '\d'
    allowable: "-"
`},
		{"wide replacement without redactable", `
rules:
  - name: a
    replacement: "##"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPolicy), 0o600))

	p, err := Load(path)
	require.NoError(t, err)

	red, err := p.Redactor("digits")
	require.NoError(t, err)
	assert.Equal(t, "###-##-####", red(0, "123-45-6789"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
