package model

import (
	"strings"
)

// Field describes one declared member of a value object class. Type is the
// raw declared type and may carry a <...> suffix and trailing [] markers.
type Field struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Type        string `json:"type" yaml:"type" toml:"type"`
	Array       bool   `json:"array,omitempty" yaml:"array,omitempty" toml:"array,omitempty"`
	Static      bool   `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	Final       bool   `json:"final,omitempty" yaml:"final,omitempty" toml:"final,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// IsArray reconciles the explicit array flag with the trailing "[]" naming
// convention.
func (f *Field) IsArray() bool {
	return f.Array || strings.HasSuffix(strings.TrimSpace(f.Type), "[]")
}

// Class is the enclosing value object a copy method is generated for.
type Class struct {
	Package     string   `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Fields      []*Field `json:"fields" yaml:"fields" toml:"fields"`
}

// QualifiedName returns the dotted package-qualified class name.
func (c *Class) QualifiedName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// Parameter is one formal parameter of a generated method.
type Parameter struct {
	Name        string
	Type        string
	Description string
}

// Method is the signature stub of a generated method. The body is carried
// separately as Statements.
type Method struct {
	Name        string
	Description string
	Doc         []string // additional documentation lines
	Parameters  []*Parameter
}

// Statements is an ordered sequence of generated source lines.
type Statements []string

// Concat returns a new sequence holding s followed by every part.
func (s Statements) Concat(parts ...Statements) Statements {
	n := len(s)
	for _, p := range parts {
		n += len(p)
	}
	out := make(Statements, 0, n)
	out = append(out, s...)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Indent returns a copy of s with every non-empty line prefixed by prefix.
func (s Statements) Indent(prefix string) Statements {
	out := make(Statements, len(s))
	for i, line := range s {
		if line == "" {
			continue
		}
		out[i] = prefix + line
	}
	return out
}

// MapKeyMode selects how the key of a map entry is copied.
type MapKeyMode string

const (
	// MapKeyCompat copies the key with the value type's plan, matching the
	// historical generator output.
	MapKeyCompat MapKeyMode = "compat"
	// MapKeyCorrected copies the key with the key type's own plan.
	MapKeyCorrected MapKeyMode = "corrected"
)
