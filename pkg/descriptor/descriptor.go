// Package descriptor loads value object class descriptions from YAML, TOML
// or JSON files.
package descriptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/copytogen/internal/model"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported descriptor format")
	ErrNoClasses         = errors.New("descriptor declares no classes")
	ErrInvalidClass      = errors.New("invalid class descriptor")
	ErrDuplicateClass    = errors.New("duplicate class name")
)

// File is the on-disk descriptor layout.
type File struct {
	Classes []*model.Class `json:"classes" yaml:"classes" toml:"classes"`
}

// Format is a descriptor encoding, named after its file extension.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf returns the descriptor format implied by path's extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// Load reads and validates the descriptor file at path.
func Load(path string) (*File, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("load %s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}

	f, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

// Decode parses and validates descriptor data encoded as format.
func Decode(format Format, data []byte) (*File, error) {
	var (
		f   File
		err error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s descriptor: %w", format, err)
	}

	if err = f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that f names at least one class and that every class and
// field carries a name. Declared types are not checked.
func (f *File) Validate() error {
	if len(f.Classes) == 0 {
		return ErrNoClasses
	}
	for i, c := range f.Classes {
		if c == nil || strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: class #%d has no name", ErrInvalidClass, i+1)
		}
		for j, fld := range c.Fields {
			if fld == nil || strings.TrimSpace(fld.Name) == "" {
				return fmt.Errorf("%w: %s field #%d has no name", ErrInvalidClass, c.Name, j+1)
			}
			if strings.TrimSpace(fld.Type) == "" {
				return fmt.Errorf("%w: %s.%s has no type", ErrInvalidClass, c.Name, fld.Name)
			}
		}
	}
	return nil
}

// LoadAll loads every descriptor named by paths. Directories are scanned
// (not recursively) for files with a known extension, in lexical order.
// Output files are named after the simple class name, so two classes sharing
// it are rejected even when their packages differ.
func LoadAll(paths ...string) ([]*model.Class, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}

	var classes []*model.Class
	seen := make(map[string]string)
	for _, path := range files {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		for _, c := range f.Classes {
			if prev, ok := seen[c.Name]; ok {
				return nil, fmt.Errorf("%w: %s in %s and %s", ErrDuplicateClass, c.Name, prev, path)
			}
			seen[c.Name] = path
		}
		classes = append(classes, f.Classes...)
	}
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}
	return classes, nil
}

func expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat descriptor: %w", err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read descriptor directory: %w", err)
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, ok := FormatOf(e.Name()); ok {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		slices.Sort(found)
		out = append(out, found...)
	}
	return out, nil
}
