package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cmmoran/copytogen/internal/model"
)

const (
	MapKeyCompat    = string(model.MapKeyCompat)
	MapKeyCorrected = string(model.MapKeyCorrected)
)

// Options control generation and output.
//
// Inputs          – descriptor files or directories to load.
// OutDir          – output directory.
// Indent          – indentation of nested statements in the Java body.
// SourceName      – expression holding the copied instance ("this").
// TargetName      – name of the copy target parameter ("target").
// MapKeyMode      – "compat" (keys use the value type's plan) or "corrected".
// InitDestination – instantiate a null destination List/Map before filling it.
// ExcludeFields   – field names never copied (case‑insensitive).
// EmitGo          – also write the Go mirror of each class.
// GoPackage       – package name of the Go mirror files.
type Options struct {
	Inputs          []string `json:"inputs,omitempty" yaml:"inputs,omitempty" toml:"inputs,omitempty" mapstructure:"inputs,omitempty"`
	OutDir          string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	Indent          string   `json:"indent,omitempty" yaml:"indent,omitempty" toml:"indent,omitempty" mapstructure:"indent,omitempty"`
	SourceName      string   `json:"source_name,omitempty" yaml:"source_name,omitempty" toml:"source_name,omitempty" mapstructure:"source_name,omitempty"`
	TargetName      string   `json:"target_name,omitempty" yaml:"target_name,omitempty" toml:"target_name,omitempty" mapstructure:"target_name,omitempty"`
	MapKeyMode      string   `json:"map_key_mode,omitempty" yaml:"map_key_mode,omitempty" toml:"map_key_mode,omitempty" mapstructure:"map_key_mode,omitempty"`
	InitDestination bool     `json:"init_destination,omitempty" yaml:"init_destination,omitempty" toml:"init_destination,omitempty" mapstructure:"init_destination,omitempty"`
	ExcludeFields   []string `json:"exclude_fields,omitempty" yaml:"exclude_fields,omitempty" toml:"exclude_fields,omitempty" mapstructure:"exclude_fields,omitempty"`
	EmitGo          bool     `json:"emit_go,omitempty" yaml:"emit_go,omitempty" toml:"emit_go,omitempty" mapstructure:"emit_go,omitempty"`
	GoPackage       string   `json:"go_package,omitempty" yaml:"go_package,omitempty" toml:"go_package,omitempty" mapstructure:"go_package,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:     "copyto",
		Indent:     "  ",
		SourceName: "this",
		TargetName: "target",
		MapKeyMode: MapKeyCompat,
		GoPackage:  "model",
	}
}

// Normalize fills unset values with defaults and rejects invalid settings.
func (o *Options) Normalize() error {
	d := NewOptions()
	if len(o.OutDir) == 0 {
		o.OutDir = d.OutDir
	}
	if strings.Contains(o.OutDir, ".") {
		o.OutDir, _ = filepath.Abs(o.OutDir)
	}
	if o.Indent == "" {
		o.Indent = d.Indent
	}
	if o.SourceName == "" {
		o.SourceName = d.SourceName
	}
	if o.TargetName == "" {
		o.TargetName = d.TargetName
	}
	if o.GoPackage == "" {
		o.GoPackage = d.GoPackage
	}

	o.MapKeyMode = strings.ToLower(strings.TrimSpace(o.MapKeyMode))
	switch o.MapKeyMode {
	case "":
		o.MapKeyMode = d.MapKeyMode
	case MapKeyCompat, MapKeyCorrected:
	default:
		return fmt.Errorf("invalid map key mode %q: want %q or %q", o.MapKeyMode, MapKeyCompat, MapKeyCorrected)
	}

	for i, f := range o.ExcludeFields {
		o.ExcludeFields[i] = strings.TrimSpace(f)
	}
	return nil
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInputs(paths ...string) Option {
	return func(o *Options) { o.Inputs = append(o.Inputs, paths...) }
}

func WithOutDir(d string) Option     { return func(o *Options) { o.OutDir = d } }
func WithIndent(s string) Option     { return func(o *Options) { o.Indent = s } }
func WithSourceName(s string) Option { return func(o *Options) { o.SourceName = s } }
func WithTargetName(s string) Option { return func(o *Options) { o.TargetName = s } }
func WithInitDestination() Option    { return func(o *Options) { o.InitDestination = true } }

func WithCorrectedMapKeys() Option {
	return func(o *Options) { o.MapKeyMode = MapKeyCorrected }
}

func WithExcludeFields(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeFields = append(o.ExcludeFields, strings.TrimSpace(n))
		}
	}
}

func WithGo(pkg string) Option {
	return func(o *Options) { o.EmitGo, o.GoPackage = true, pkg }
}
